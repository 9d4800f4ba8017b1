package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmelnikov/jobport/internal/common"
)

// applyJob handles the multipart application form: jobId and coverLetter
// fields plus the resume file.
func (s *Server) applyJob(c *gin.Context) {
	claims := claimsFrom(c)

	jobID := c.PostForm("jobId")
	coverLetter := c.PostForm("coverLetter")

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read resume file"})
		return
	}
	defer file.Close()

	app, err := s.svc.Applications.Apply(c.Request.Context(), claims.UserID, jobID, coverLetter, fileHeader.Filename, file)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": app})
}

func (s *Server) listApplications(c *gin.Context) {
	seekerID := c.Query("userId")
	if seekerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	apps, err := s.svc.Applications.ListBySeeker(c.Request.Context(), seekerID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (s *Server) listEmployerApplications(c *gin.Context) {
	claims := claimsFrom(c)
	employerID := c.Param("employerId")

	if claims.Role != common.RoleEmployer || claims.UserID != employerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	groups, err := s.svc.Applications.ListByEmployer(c.Request.Context(), employerID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": groups})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) setApplicationStatus(c *gin.Context) {
	claims := claimsFrom(c)

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.svc.Applications.SetStatus(c.Request.Context(), c.Param("id"), claims.UserID, claims.Role, req.Status); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
