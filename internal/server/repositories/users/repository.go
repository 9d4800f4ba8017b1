// Package users declares the repository contract for identity records.
package users

import (
	"context"

	"github.com/vmelnikov/jobport/internal/server/models"
)

// Repository defines persistence operations for users.
type Repository interface {
	// Create inserts a new user and returns it with its generated id.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks a user up by lower-cased email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID looks a user up by id.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdateProfile mutates the editable profile fields and returns the
	// updated record. Email and role are immutable.
	UpdateProfile(ctx context.Context, id, fullName, phone, companyName string) (*models.User, error)

	// CountByRole counts users with the given role.
	CountByRole(ctx context.Context, role string) (int64, error)
}
