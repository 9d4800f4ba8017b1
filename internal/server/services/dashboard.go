package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/server/models"
	"github.com/vmelnikov/jobport/internal/server/repositories/repomanager"
)

// EmployerOverview summarizes an employer's activity.
type EmployerOverview struct {
	JobCount       int           `json:"jobCount"`
	ApplicantCount int64         `json:"applicantCount"`
	Jobs           []*models.Job `json:"jobs"`
}

// PlatformStats are the public landing-page counters.
type PlatformStats struct {
	TotalJobs       int64 `json:"totalJobs"`
	TotalEmployers  int64 `json:"totalEmployers"`
	TotalJobSeekers int64 `json:"totalJobSeekers"`
	SuccessRate     int   `json:"successRate"`
}

// successRatePercent is a fixed marketing figure, not a measurement.
const successRatePercent = 95

// DashboardService aggregates counts for the employer dashboard and the
// public stats endpoint.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// Overview returns the employer's posting list plus job and applicant
// totals.
func (s *DashboardService) Overview(ctx context.Context, employerID string) (*EmployerOverview, error) {
	jobs, err := s.repomanager.Jobs(s.db).ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("error listing employer jobs: %v", err)
	}
	applicants, err := s.repomanager.Applications(s.db).CountByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("error counting applicants: %v", err)
	}
	return &EmployerOverview{
		JobCount:       len(jobs),
		ApplicantCount: applicants,
		Jobs:           jobs,
	}, nil
}

// Stats returns the platform-wide counters.
func (s *DashboardService) Stats(ctx context.Context) (*PlatformStats, error) {
	totalJobs, err := s.repomanager.Jobs(s.db).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting jobs: %v", err)
	}
	usersRepo := s.repomanager.Users(s.db)
	employers, err := usersRepo.CountByRole(ctx, common.RoleEmployer)
	if err != nil {
		return nil, fmt.Errorf("error counting employers: %v", err)
	}
	seekers, err := usersRepo.CountByRole(ctx, common.RoleJobSeeker)
	if err != nil {
		return nil, fmt.Errorf("error counting job seekers: %v", err)
	}
	return &PlatformStats{
		TotalJobs:       totalJobs,
		TotalEmployers:  employers,
		TotalJobSeekers: seekers,
		SuccessRate:     successRatePercent,
	}, nil
}
