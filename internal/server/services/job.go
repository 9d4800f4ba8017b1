package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/server/models"
	"github.com/vmelnikov/jobport/internal/server/repositories/repomanager"
)

// JobService manages the job catalog: posting, browsing, editing, and
// removing jobs.
type JobService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewJobService(db *sql.DB, m repomanager.RepositoryManager) *JobService {
	return &JobService{db: db, repomanager: m}
}

// Create posts a new job on behalf of employerID. The company fields are
// denormalized from the employer's profile at post time.
func (s *JobService) Create(ctx context.Context, employerID string, job *models.Job) (*models.Job, error) {
	employer, err := s.repomanager.Users(s.db).GetByID(ctx, employerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if employer.Role != common.RoleEmployer {
		return nil, common.ErrorForbidden
	}

	if strings.TrimSpace(job.Title) == "" || strings.TrimSpace(job.Description) == "" ||
		strings.TrimSpace(job.Location) == "" || strings.TrimSpace(job.Type) == "" {
		return nil, fmt.Errorf("%w: title, description, location and type are required", common.ErrorInvalidInput)
	}

	job.EmployerID = employer.ID
	if job.Company == "" {
		job.Company = employer.CompanyName
	}

	created, err := s.repomanager.Jobs(s.db).Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("error creating job: %v", err)
	}
	return created, nil
}

// List returns jobs matching the filter, newest-first.
func (s *JobService) List(ctx context.Context, filter models.JobFilter) ([]*models.Job, error) {
	jobs, err := s.repomanager.Jobs(s.db).List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %v", err)
	}
	return jobs, nil
}

// Get returns one job or common.ErrorNotFound.
func (s *JobService) Get(ctx context.Context, jobID string) (*models.Job, error) {
	job, err := s.repomanager.Jobs(s.db).GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error getting job: %v", err)
	}
	return job, nil
}

// ListByEmployer returns an employer's own postings, newest-first.
func (s *JobService) ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error) {
	jobs, err := s.repomanager.Jobs(s.db).ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("error listing employer jobs: %v", err)
	}
	return jobs, nil
}

// Update applies the patch to a job the requester owns.
func (s *JobService) Update(ctx context.Context, jobID, requesterID, requesterRole string, patch models.JobPatch) (*models.Job, error) {
	repo := s.repomanager.Jobs(s.db)

	job, err := repo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if err := authorizeJobOwner(job, requesterID, requesterRole); err != nil {
		return nil, err
	}

	updated, err := repo.Update(ctx, jobID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating job: %v", err)
	}
	return updated, nil
}

// Delete removes a job the requester owns.
func (s *JobService) Delete(ctx context.Context, jobID, requesterID, requesterRole string) error {
	repo := s.repomanager.Jobs(s.db)

	job, err := repo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	if err := authorizeJobOwner(job, requesterID, requesterRole); err != nil {
		return err
	}

	if err := repo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting job: %v", err)
	}
	return nil
}

// authorizeJobOwner is the single ownership predicate shared by every
// job mutation, including application status changes.
func authorizeJobOwner(job *models.Job, requesterID, requesterRole string) error {
	if requesterRole != common.RoleEmployer || job.EmployerID != requesterID {
		return common.ErrorForbidden
	}
	return nil
}
