package verificationcodes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/dbx"
	"github.com/vmelnikov/jobport/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, email, code string, ttl time.Duration) error {
	query := `
		INSERT INTO verification_codes (email, code, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET code = $2, expires_at = $3
	`
	if _, err := r.db.ExecContext(ctx, query, email, code, time.Now().Add(ttl)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, email string) (*models.VerificationCode, error) {
	query := `
		SELECT email, code, expires_at
		FROM verification_codes
		WHERE email = $1
	`
	vc := &models.VerificationCode{}
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&vc.Email, &vc.Code, &vc.Expires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return vc, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, email string) error {
	query := `DELETE FROM verification_codes WHERE email = $1`
	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
