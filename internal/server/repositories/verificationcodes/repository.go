// Package verificationcodes declares the repository contract for pending
// email-verification codes. Codes live in a keyed store with a TTL so the
// flow survives process restarts and scales across instances.
package verificationcodes

import (
	"context"
	"time"

	"github.com/vmelnikov/jobport/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and consuming
// verification codes.
type Repository interface {
	// Upsert stores a code for email with an expiry of now+ttl, replacing
	// any pending code for the same email.
	Upsert(ctx context.Context, email, code string, ttl time.Duration) error

	// Find returns the pending code for email, or common.ErrorNotFound.
	Find(ctx context.Context, email string) (*models.VerificationCode, error)

	// Delete removes the pending code for email. Deleting a non-existent
	// code is not an error.
	Delete(ctx context.Context, email string) error
}
