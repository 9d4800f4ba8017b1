package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listSavedJobs(c *gin.Context) {
	seekerID := c.Query("userId")
	if seekerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	saved, err := s.svc.SavedJobs.List(c.Request.Context(), seekerID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savedJobs": saved})
}

type saveJobRequest struct {
	JobID string `json:"jobId"`
}

func (s *Server) saveJob(c *gin.Context) {
	claims := claimsFrom(c)

	var req saveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := s.svc.SavedJobs.Save(c.Request.Context(), claims.UserID, req.JobID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"savedJob": saved})
}

func (s *Server) removeSavedJob(c *gin.Context) {
	seekerID := c.Query("userId")
	if seekerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	if err := s.svc.SavedJobs.Remove(c.Request.Context(), seekerID, c.Param("jobId")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "saved job removed"})
}
