package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmelnikov/jobport/internal/common"
)

// abortWithError maps a service error onto an HTTP status. Unrecognized
// errors become a 500 with a generic body; the detail is only logged.
// Invalid input is logged at debug level to keep it out of ordinary
// server logs.
func (s *Server) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalidInput):
		s.logger.Debug(c.Request.Context(), "rejected request", "path", c.FullPath(), "error", err.Error())
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorUnauthenticated),
		errors.Is(err, common.ErrCodeExpired),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
