package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmelnikov/jobport/internal/server/services"
)

type registerRequest struct {
	Role        string `json:"role"`
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	CompanyName string `json:"companyname"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := s.svc.Users.Register(c.Request.Context(), services.RegisterInput{
		Role:        req.Role,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, user, err := s.svc.Users.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type updateProfileRequest struct {
	FullName    string `json:"fullname"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyname"`
}

func (s *Server) updateProfile(c *gin.Context) {
	claims := claimsFrom(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := s.svc.Users.UpdateProfile(c.Request.Context(), claims.UserID, req.FullName, req.Phone, req.CompanyName)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type verificationRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (s *Server) sendVerification(c *gin.Context) {
	var req verificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.svc.Verification.Start(c.Request.Context(), req.Email); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

func (s *Server) checkVerification(c *gin.Context) {
	var req verificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.svc.Verification.Check(c.Request.Context(), req.Email, req.Code); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email verified"})
}
