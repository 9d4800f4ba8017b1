// Package server wires the application together: logging, database,
// repositories, services, and the HTTP server, and handles graceful
// shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/vmelnikov/jobport/internal/logging"
	"github.com/vmelnikov/jobport/internal/server/config"
	"github.com/vmelnikov/jobport/internal/server/httpapi"
	"github.com/vmelnikov/jobport/internal/server/repositories/repomanager"
	"github.com/vmelnikov/jobport/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

// logSender writes verification codes to the log. Actual email delivery
// stays behind the services.Sender boundary.
type logSender struct {
	logger logging.Logger
}

func (s *logSender) Send(ctx context.Context, email, code string) error {
	s.logger.Info(ctx, "verification code issued", "email", email, "code", code)
	return nil
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	resumeService := services.NewResumeService(cfg)

	svc := httpapi.Services{
		Users:        services.NewUserService(db, rm, cfg),
		Jobs:         services.NewJobService(db, rm),
		Applications: services.NewApplicationService(db, rm, resumeService),
		SavedJobs:    services.NewSavedJobService(db, rm),
		Dashboard:    services.NewDashboardService(db, rm),
		Contacts:     services.NewContactService(db, rm),
		Verification: services.NewVerificationService(db, rm, &logSender{logger: logger}, cfg),
		Resumes:      resumeService,
	}

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		server: httpapi.NewServer(cfg, logger, svc),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
