package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/server/models"
)

func (s *Server) platformStats(c *gin.Context) {
	stats, err := s.svc.Dashboard.Stats(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (s *Server) employerDashboard(c *gin.Context) {
	claims := claimsFrom(c)
	employerID := c.Param("employerId")

	if claims.Role != common.RoleEmployer || claims.UserID != employerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	overview, err := s.svc.Dashboard.Overview(c.Request.Context(), employerID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

type contactRequest struct {
	EmployerID   string `json:"employerId"`
	FullName     string `json:"fullName"`
	EmailAddress string `json:"emailAddress"`
	Subject      string `json:"subject"`
	Description  string `json:"description"`
}

func (s *Server) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	contact, err := s.svc.Contacts.Submit(c.Request.Context(), &models.Contact{
		EmployerID:   req.EmployerID,
		FullName:     req.FullName,
		EmailAddress: req.EmailAddress,
		Subject:      req.Subject,
		Description:  req.Description,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message received", "contact": contact})
}

func (s *Server) resumeURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	url, err := s.svc.Resumes.DownloadURL(c.Request.Context(), key)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
