package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/server/models"
	"github.com/vmelnikov/jobport/internal/server/repositories/repomanager"
)

// SavedJobService manages a seeker's bookmarks.
type SavedJobService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSavedJobService(db *sql.DB, m repomanager.RepositoryManager) *SavedJobService {
	return &SavedJobService{db: db, repomanager: m}
}

// Save bookmarks jobID for seekerID. Saving an already saved job returns
// the existing bookmark instead of failing.
func (s *SavedJobService) Save(ctx context.Context, seekerID, jobID string) (*models.SavedJob, error) {
	job, err := s.repomanager.Jobs(s.db).GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.SavedJobs(s.db)
	saved, err := repo.Save(ctx, &models.SavedJob{
		JobSeekerID: seekerID,
		JobID:       job.ID,
		JobTitle:    job.Title,
		Company:     job.Company,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return repo.Find(ctx, seekerID, jobID)
		}
		return nil, fmt.Errorf("error saving job: %v", err)
	}
	return saved, nil
}

// List returns a seeker's bookmarks, newest-first.
func (s *SavedJobService) List(ctx context.Context, seekerID string) ([]*models.SavedJob, error) {
	saved, err := s.repomanager.SavedJobs(s.db).List(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("error listing saved jobs: %v", err)
	}
	return saved, nil
}

// Remove deletes the bookmark for (seekerID, jobID). Removing an absent
// bookmark is a no-op.
func (s *SavedJobService) Remove(ctx context.Context, seekerID, jobID string) error {
	if err := s.repomanager.SavedJobs(s.db).Delete(ctx, seekerID, jobID); err != nil {
		return fmt.Errorf("error removing saved job: %v", err)
	}
	return nil
}
