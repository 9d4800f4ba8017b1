package savedjobs

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

func (r *PostgresRepository) Save(ctx context.Context, saved *models.SavedJob) (*models.SavedJob, error) {
	query := `
		INSERT INTO saved_jobs (job_seeker_id, job_id, job_title, company)
		VALUES ($1, $2, $3, $4)
		RETURNING id, saved_at
	`
	err := r.db.QueryRowContext(ctx, query,
		saved.JobSeekerID, saved.JobID, saved.JobTitle, saved.Company).
		Scan(&saved.ID, &saved.SavedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return saved, nil
}

func (r *PostgresRepository) Find(ctx context.Context, seekerID, jobID string) (*models.SavedJob, error) {
	query := `
		SELECT id, job_seeker_id, job_id, job_title, company, saved_at
		FROM saved_jobs
		WHERE job_seeker_id = $1 AND job_id = $2
	`
	saved := &models.SavedJob{}
	err := r.db.QueryRowContext(ctx, query, seekerID, jobID).Scan(&saved.ID,
		&saved.JobSeekerID, &saved.JobID, &saved.JobTitle, &saved.Company, &saved.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return saved, nil
}

func (r *PostgresRepository) List(ctx context.Context, seekerID string) ([]*models.SavedJob, error) {
	query := `
		SELECT id, job_seeker_id, job_id, job_title, company, saved_at
		FROM saved_jobs
		WHERE job_seeker_id = $1
		ORDER BY saved_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, seekerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	saved := make([]*models.SavedJob, 0)
	for rows.Next() {
		s := &models.SavedJob{}
		err := rows.Scan(&s.ID, &s.JobSeekerID, &s.JobID, &s.JobTitle, &s.Company, &s.SavedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return saved, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, seekerID, jobID string) error {
	query := `DELETE FROM saved_jobs WHERE job_seeker_id = $1 AND job_id = $2`
	if _, err := r.db.ExecContext(ctx, query, seekerID, jobID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
