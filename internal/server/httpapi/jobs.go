package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmelnikov/jobport/internal/server/models"
)

func (s *Server) listJobs(c *gin.Context) {
	filter := models.JobFilter{
		Text:             c.Query("q"),
		Location:         c.Query("location"),
		Type:             c.Query("type"),
		Experience:       c.Query("experience"),
		ExcludeAppliedBy: c.Query("userId"),
	}

	jobs, err := s.svc.Jobs.List(c.Request.Context(), filter)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (s *Server) getJob(c *gin.Context) {
	job, err := s.svc.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (s *Server) listEmployerJobs(c *gin.Context) {
	jobs, err := s.svc.Jobs.ListByEmployer(c.Request.Context(), c.Param("employerId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

type createJobRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Location           string   `json:"location"`
	Type               string   `json:"type"`
	Experience         string   `json:"experience"`
	Salary             string   `json:"salary"`
	Skills             []string `json:"skills"`
	Company            string   `json:"company"`
	CompanyDescription string   `json:"companyDescription"`
}

func (s *Server) createJob(c *gin.Context) {
	claims := claimsFrom(c)

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := s.svc.Jobs.Create(c.Request.Context(), claims.UserID, &models.Job{
		Title:              req.Title,
		Description:        req.Description,
		Location:           req.Location,
		Type:               req.Type,
		Experience:         req.Experience,
		Salary:             req.Salary,
		Skills:             req.Skills,
		Company:            req.Company,
		CompanyDescription: req.CompanyDescription,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func (s *Server) updateJob(c *gin.Context) {
	claims := claimsFrom(c)

	var patch models.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := s.svc.Jobs.Update(c.Request.Context(), c.Param("id"), claims.UserID, claims.Role, patch)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (s *Server) deleteJob(c *gin.Context) {
	claims := claimsFrom(c)

	if err := s.svc.Jobs.Delete(c.Request.Context(), c.Param("id"), claims.UserID, claims.Role); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "job deleted"})
}
