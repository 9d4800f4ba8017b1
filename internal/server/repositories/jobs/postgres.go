package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/dbx"
	"github.com/vmelnikov/jobport/internal/server/models"
)

const jobColumns = `id, employer_id, title, description, location, type,
		experience, salary, skills, company, company_description, posted_at`

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (employer_id, title, description, location, type,
			experience, salary, skills, company, company_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, posted_at
	`
	skills, err := json.Marshal(job.Skills)
	if err != nil {
		return nil, fmt.Errorf("skills encode: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Location, job.Type,
		job.Experience, job.Salary, skills, job.Company, job.CompanyDescription).
		Scan(&job.ID, &job.PostedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return job, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.db.QueryRowContext(ctx, query, id))
}

// List builds the WHERE clause from the filter. ExcludeAppliedBy is an
// anti-join against applications so a seeker never sees a job twice.
func (r *PostgresRepository) List(ctx context.Context, filter models.JobFilter) ([]*models.Job, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Text != "" {
		conds = append(conds, "title ILIKE '%' || "+arg(filter.Text)+" || '%'")
	}
	if filter.Location != "" {
		conds = append(conds, "location ILIKE '%' || "+arg(filter.Location)+" || '%'")
	}
	if filter.Type != "" {
		conds = append(conds, "type = "+arg(filter.Type))
	}
	if filter.Experience != "" {
		conds = append(conds, "experience = "+arg(filter.Experience))
	}
	if filter.ExcludeAppliedBy != "" {
		conds = append(conds, `NOT EXISTS (
			SELECT 1 FROM applications a
			WHERE a.job_id = jobs.id AND a.job_seeker_id = `+arg(filter.ExcludeAppliedBy)+`)`)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY posted_at DESC"

	return r.queryJobs(ctx, query, args...)
}

func (r *PostgresRepository) ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY posted_at DESC`
	return r.queryJobs(ctx, query, employerID)
}

// Update leaves columns whose patch pointer is nil untouched via COALESCE.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	var skills any
	if patch.Skills != nil {
		b, err := json.Marshal(*patch.Skills)
		if err != nil {
			return nil, fmt.Errorf("skills encode: %w", err)
		}
		skills = b
	}

	query := `
		UPDATE jobs SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			location = COALESCE($4, location),
			type = COALESCE($5, type),
			experience = COALESCE($6, experience),
			salary = COALESCE($7, salary),
			skills = COALESCE($8, skills),
			company = COALESCE($9, company),
			company_description = COALESCE($10, company_description),
			posted_at = COALESCE($11, posted_at)
		WHERE id = $1
		RETURNING ` + jobColumns

	return scanJob(r.db.QueryRowContext(ctx, query, id,
		patch.Title, patch.Description, patch.Location, patch.Type,
		patch.Experience, patch.Salary, skills, patch.Company,
		patch.CompanyDescription, patch.PostedAt))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
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

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) queryJobs(ctx context.Context, query string, args ...any) ([]*models.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	jobs := make([]*models.Job, 0)
	for rows.Next() {
		job, err := scanJobRow(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return jobs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row *sql.Row) (*models.Job, error) {
	job, err := scanJobRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return job, nil
}

func scanJobRow(row rowScanner) (*models.Job, error) {
	job := &models.Job{}
	var skills []byte
	err := row.Scan(&job.ID, &job.EmployerID, &job.Title, &job.Description,
		&job.Location, &job.Type, &job.Experience, &job.Salary, &skills,
		&job.Company, &job.CompanyDescription, &job.PostedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &job.Skills); err != nil {
			return nil, fmt.Errorf("skills decode: %w", err)
		}
	}
	return job, nil
}
