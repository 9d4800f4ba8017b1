// Package jobs declares the repository contract for job postings.
package jobs

import (
	"context"

	"github.com/vmelnikov/jobport/internal/server/models"
)

// Repository defines persistence operations for job postings.
type Repository interface {
	// Create inserts a posting and returns it with its generated id.
	Create(ctx context.Context, job *models.Job) (*models.Job, error)

	// GetByID returns a posting or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Job, error)

	// List returns postings matching the filter, newest-first. An empty
	// result is an empty slice, not an error.
	List(ctx context.Context, filter models.JobFilter) ([]*models.Job, error)

	// ListByEmployer returns an employer's postings, newest-first.
	ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error)

	// Update applies the whitelisted patch fields and returns the updated
	// posting, or common.ErrorNotFound.
	Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error)

	// Delete removes a posting, or returns common.ErrorNotFound.
	Delete(ctx context.Context, id string) error

	// Count returns the total number of postings.
	Count(ctx context.Context) (int64, error)
}
