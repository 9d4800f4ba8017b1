package users

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

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (role, fullname, companyname, email, phone, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Role, user.FullName, user.CompanyName, user.Email, user.Phone, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, role, fullname, companyname, email, phone, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, role, fullname, companyname, email, phone, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id, fullName, phone, companyName string) (*models.User, error) {
	query := `
		UPDATE users
		SET fullname = $2, phone = $3, companyname = $4
		WHERE id = $1
		RETURNING id, role, fullname, companyname, email, phone, password_hash, created_at
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id, fullName, phone, companyName))
}

func (r *PostgresRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = $1`

	var n int64
	if err := r.db.QueryRowContext(ctx, query, role).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Role, &user.FullName, &user.CompanyName,
		&user.Email, &user.Phone, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
