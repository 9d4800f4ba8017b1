// Package applications declares the repository contract for job
// applications.
package applications

import (
	"context"

	"github.com/vmelnikov/jobport/internal/server/models"
)

// Repository defines persistence operations for applications.
type Repository interface {
	// Create inserts an application with status New. A second application
	// for the same (seeker, job) pair yields common.ErrorAlreadyExists;
	// the unique index makes this safe under concurrent identical calls.
	Create(ctx context.Context, app *models.Application) (*models.Application, error)

	// GetByID returns an application or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Application, error)

	// ListBySeeker returns a seeker's applications newest-first, each
	// joined with the minimal job fields.
	ListBySeeker(ctx context.Context, seekerID string) ([]*models.ApplicationWithJob, error)

	// ListByEmployer returns every application against the employer's
	// jobs, joined with the applicant's name and email.
	ListByEmployer(ctx context.Context, employerID string) ([]*models.Applicant, error)

	// UpdateStatus sets an application's status, or returns
	// common.ErrorNotFound.
	UpdateStatus(ctx context.Context, id, status string) error

	// CountByEmployer counts applications against the employer's jobs.
	CountByEmployer(ctx context.Context, employerID string) (int64, error)
}
