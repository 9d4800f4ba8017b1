// Package httpapi exposes the REST surface: the gin router, the bearer-token
// middleware, and the handlers translating HTTP requests into service calls.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/logging"
	"github.com/vmelnikov/jobport/internal/server/config"
	"github.com/vmelnikov/jobport/internal/server/models"
	"github.com/vmelnikov/jobport/internal/server/services"
)

// UserProvider is the slice of UserService the handlers need.
type UserProvider interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password, role string) (string, *models.User, error)
	UpdateProfile(ctx context.Context, userID, fullName, phone, companyName string) (*models.User, error)
}

type JobProvider interface {
	Create(ctx context.Context, employerID string, job *models.Job) (*models.Job, error)
	List(ctx context.Context, filter models.JobFilter) ([]*models.Job, error)
	Get(ctx context.Context, jobID string) (*models.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error)
	Update(ctx context.Context, jobID, requesterID, requesterRole string, patch models.JobPatch) (*models.Job, error)
	Delete(ctx context.Context, jobID, requesterID, requesterRole string) error
}

type ApplicationProvider interface {
	Apply(ctx context.Context, seekerID, jobID, coverLetter, filename string, resume io.Reader) (*models.Application, error)
	ListBySeeker(ctx context.Context, seekerID string) ([]*models.ApplicationWithJob, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*models.JobApplicants, error)
	SetStatus(ctx context.Context, applicationID, requesterID, requesterRole, status string) error
}

type SavedJobProvider interface {
	Save(ctx context.Context, seekerID, jobID string) (*models.SavedJob, error)
	List(ctx context.Context, seekerID string) ([]*models.SavedJob, error)
	Remove(ctx context.Context, seekerID, jobID string) error
}

type DashboardProvider interface {
	Overview(ctx context.Context, employerID string) (*services.EmployerOverview, error)
	Stats(ctx context.Context) (*services.PlatformStats, error)
}

type ContactProvider interface {
	Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error)
}

type VerificationProvider interface {
	Start(ctx context.Context, email string) error
	Check(ctx context.Context, email, code string) error
}

// ResumeURLProvider issues download links for stored resumes.
type ResumeURLProvider interface {
	DownloadURL(ctx context.Context, key string) (string, error)
}

// Services bundles the dependencies of the HTTP layer.
type Services struct {
	Users        UserProvider
	Jobs         JobProvider
	Applications ApplicationProvider
	SavedJobs    SavedJobProvider
	Dashboard    DashboardProvider
	Contacts     ContactProvider
	Verification VerificationProvider
	Resumes      ResumeURLProvider
}

type Server struct {
	address         string
	logger          logging.Logger
	jwtSecret       []byte
	shutdownTimeout time.Duration
	svc             Services
}

func NewServer(cfg *config.Config, l logging.Logger, svc Services) *Server {
	return &Server{
		address:         cfg.EndpointAddr,
		logger:          l.With("module", "http_server"),
		jwtSecret:       []byte(cfg.SecretKey),
		shutdownTimeout: cfg.ShutdownTimeout,
		svc:             svc,
	}
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/contact", s.submitContact)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", s.register)
			authGroup.POST("/login", s.login)
			authGroup.POST("/verification/send", s.sendVerification)
			authGroup.POST("/verification/check", s.checkVerification)
			authGroup.PUT("/profile", s.authRequired(), s.updateProfile)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", s.listJobs)
			jobs.GET("/:id", s.getJob)
			jobs.GET("/employer/:employerId", s.listEmployerJobs)
			jobs.POST("", s.authRequired(), s.requireRole(common.RoleEmployer), s.createJob)
			jobs.PUT("/:id", s.authRequired(), s.updateJob)
			jobs.DELETE("/:id", s.authRequired(), s.deleteJob)
		}

		applications := api.Group("/applications")
		{
			applications.POST("/apply-job", s.authRequired(), s.applyJob)
			applications.GET("", s.listApplications)
			applications.GET("/employer/:employerId", s.authRequired(), s.listEmployerApplications)
			applications.PATCH("/:id/status", s.authRequired(), s.setApplicationStatus)
		}

		savedJobs := api.Group("/savedjobs")
		{
			savedJobs.GET("", s.listSavedJobs)
			savedJobs.POST("", s.authRequired(), s.saveJob)
			savedJobs.DELETE("/:jobId", s.removeSavedJob)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", s.platformStats)
			dashboard.GET("/employer/:employerId", s.authRequired(), s.employerDashboard)
		}

		api.GET("/resumes/url", s.authRequired(), s.requireRole(common.RoleEmployer), s.resumeURL)
	}

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.setupRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
