package contacts

import (
	"context"
	"database/sql"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (employer_id, full_name, email_address, subject, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	// employer_id is optional; empty string becomes NULL
	var employerID sql.NullString
	if contact.EmployerID != "" {
		employerID = sql.NullString{String: contact.EmployerID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query, employerID,
		contact.FullName, contact.EmailAddress, contact.Subject, contact.Description).
		Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}
