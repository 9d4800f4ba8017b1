package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/dbx"
	"github.com/vmelnikov/jobport/internal/server/models"
	"github.com/vmelnikov/jobport/internal/server/repositories/repomanager"
)

// ResumeStore persists resume uploads and hands back an object key.
type ResumeStore interface {
	Store(ctx context.Context, filename string, data io.Reader) (string, error)
}

// ApplicationService runs the application workflow: applying to a job with
// a resume upload, listing applications for both sides, and moving an
// application through its statuses.
type ApplicationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	resumes     ResumeStore
}

func NewApplicationService(db *sql.DB, m repomanager.RepositoryManager, resumes ResumeStore) *ApplicationService {
	return &ApplicationService{db: db, repomanager: m, resumes: resumes}
}

// Apply submits seekerID's application for jobID. The resume is written to
// object storage first; the application insert and the removal of any
// saved-job bookmark for the same pair then run in one transaction. A
// concurrent duplicate application surfaces as common.ErrorAlreadyExists
// through the unique index on (job_seeker_id, job_id).
func (s *ApplicationService) Apply(ctx context.Context, seekerID, jobID, coverLetter, filename string, resume io.Reader) (*models.Application, error) {
	if strings.TrimSpace(seekerID) == "" || strings.TrimSpace(jobID) == "" {
		return nil, fmt.Errorf("%w: userId and jobId are required", common.ErrorInvalidInput)
	}
	if resume == nil {
		return nil, fmt.Errorf("%w: resume file is required", common.ErrorInvalidInput)
	}

	if _, err := s.repomanager.Jobs(s.db).GetByID(ctx, jobID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	resumeKey, err := s.resumes.Store(ctx, filename, resume)
	if err != nil {
		return nil, fmt.Errorf("error storing resume: %v", err)
	}

	var created *models.Application
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		app := &models.Application{
			JobSeekerID: seekerID,
			JobID:       jobID,
			CoverLetter: coverLetter,
			ResumeKey:   resumeKey,
			Status:      common.StatusNew,
		}
		var insErr error
		created, insErr = s.repomanager.Applications(tx).Create(ctx, app)
		if insErr != nil {
			return insErr
		}
		// applying supersedes the bookmark
		return s.repomanager.SavedJobs(tx).Delete(ctx, seekerID, jobID)
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating application: %v", err)
	}
	return created, nil
}

// ListBySeeker returns a seeker's applications newest-first, each joined
// with the posting's title, company, location and type.
func (s *ApplicationService) ListBySeeker(ctx context.Context, seekerID string) ([]*models.ApplicationWithJob, error) {
	apps, err := s.repomanager.Applications(s.db).ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %v", err)
	}
	return apps, nil
}

// ListByEmployer returns the employer's postings each with its applicants.
// Jobs nobody applied to appear with an empty applicant list.
func (s *ApplicationService) ListByEmployer(ctx context.Context, employerID string) ([]*models.JobApplicants, error) {
	jobs, err := s.repomanager.Jobs(s.db).ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("error listing employer jobs: %v", err)
	}
	applicants, err := s.repomanager.Applications(s.db).ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("error listing applicants: %v", err)
	}

	byJob := make(map[string][]models.Applicant)
	for _, a := range applicants {
		byJob[a.JobID] = append(byJob[a.JobID], *a)
	}

	result := make([]*models.JobApplicants, 0, len(jobs))
	for _, j := range jobs {
		group := &models.JobApplicants{Job: *j, Applicants: byJob[j.ID]}
		if group.Applicants == nil {
			group.Applicants = []models.Applicant{}
		}
		result = append(result, group)
	}
	return result, nil
}

// SetStatus moves an application to a new status. Only the employer owning
// the referenced job may do so.
func (s *ApplicationService) SetStatus(ctx context.Context, applicationID, requesterID, requesterRole, status string) error {
	if !common.ValidStatus(status) {
		return fmt.Errorf("%w: unknown status", common.ErrorInvalidInput)
	}

	appRepo := s.repomanager.Applications(s.db)
	app, err := appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	job, err := s.repomanager.Jobs(s.db).GetByID(ctx, app.JobID)
	if err != nil {
		return common.ErrorInternal
	}
	if err := authorizeJobOwner(job, requesterID, requesterRole); err != nil {
		return err
	}

	if err := appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error updating application status: %v", err)
	}
	return nil
}
