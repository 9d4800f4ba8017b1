// Package contacts declares the repository contract for contact-form
// submissions.
package contacts

import (
	"context"

	"github.com/vmelnikov/jobport/internal/server/models"
)

// Repository persists contact messages.
type Repository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
}
