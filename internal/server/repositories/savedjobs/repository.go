// Package savedjobs declares the repository contract for bookmarks.
package savedjobs

import (
	"context"

	"github.com/vmelnikov/jobport/internal/server/models"
)

// Repository defines persistence operations for saved jobs.
type Repository interface {
	// Save inserts a bookmark. An existing bookmark for the same
	// (seeker, job) pair yields common.ErrorAlreadyExists; callers that
	// want idempotent saves should then Find the existing row.
	Save(ctx context.Context, saved *models.SavedJob) (*models.SavedJob, error)

	// Find returns the bookmark for (seekerID, jobID), or
	// common.ErrorNotFound.
	Find(ctx context.Context, seekerID, jobID string) (*models.SavedJob, error)

	// List returns a seeker's bookmarks, newest-first.
	List(ctx context.Context, seekerID string) ([]*models.SavedJob, error)

	// Delete removes the bookmark for (seekerID, jobID). Deleting a
	// non-existent bookmark is not an error.
	Delete(ctx context.Context, seekerID, jobID string) error
}
