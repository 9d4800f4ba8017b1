package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/dbx"
	"github.com/vmelnikov/jobport/internal/server/models"
	"github.com/vmelnikov/jobport/internal/server/repositories/pgerr"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	query := `
		INSERT INTO applications (job_seeker_id, job_id, cover_letter, resume_key)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, applied_at
	`
	err := r.db.QueryRowContext(ctx, query,
		app.JobSeekerID, app.JobID, app.CoverLetter, app.ResumeKey).
		Scan(&app.ID, &app.Status, &app.AppliedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return app, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	query := `
		SELECT id, job_seeker_id, job_id, cover_letter, resume_key, status, applied_at
		FROM applications
		WHERE id = $1
	`
	app := &models.Application{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&app.ID, &app.JobSeekerID,
		&app.JobID, &app.CoverLetter, &app.ResumeKey, &app.Status, &app.AppliedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return app, nil
}

// ListBySeeker joins each application with the job it targets. The join is
// explicit; deleted jobs simply drop out of the listing.
func (r *PostgresRepository) ListBySeeker(ctx context.Context, seekerID string) ([]*models.ApplicationWithJob, error) {
	query := `
		SELECT a.id, a.job_seeker_id, a.job_id, a.cover_letter, a.resume_key,
			a.status, a.applied_at, j.title, j.company, j.location, j.type
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.job_seeker_id = $1
		ORDER BY a.applied_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, seekerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	apps := make([]*models.ApplicationWithJob, 0)
	for rows.Next() {
		app := &models.ApplicationWithJob{}
		err := rows.Scan(&app.ID, &app.JobSeekerID, &app.JobID, &app.CoverLetter,
			&app.ResumeKey, &app.Status, &app.AppliedAt,
			&app.JobTitle, &app.Company, &app.JobLocation, &app.JobType)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return apps, nil
}

// ListByEmployer joins applications against the employer's jobs with the
// applicant's identity. Grouping per job happens in the service layer.
func (r *PostgresRepository) ListByEmployer(ctx context.Context, employerID string) ([]*models.Applicant, error) {
	query := `
		SELECT a.id, a.job_id, u.fullname, u.email, a.cover_letter,
			a.resume_key, a.status, a.applied_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id AND j.employer_id = $1
		JOIN users u ON u.id = a.job_seeker_id
		ORDER BY a.applied_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	applicants := make([]*models.Applicant, 0)
	for rows.Next() {
		a := &models.Applicant{}
		err := rows.Scan(&a.ApplicationID, &a.JobID, &a.Name, &a.Email,
			&a.CoverLetter, &a.ResumeKey, &a.Status, &a.AppliedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return applicants, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) CountByEmployer(ctx context.Context, employerID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.employer_id = $1
	`
	var n int64
	if err := r.db.QueryRowContext(ctx, query, employerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
