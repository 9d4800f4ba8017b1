// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and profile updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/server/auth"
	"github.com/vmelnikov/jobport/internal/server/config"
	"github.com/vmelnikov/jobport/internal/server/models"
	"github.com/vmelnikov/jobport/internal/server/repositories/repomanager"
)

// RegisterInput carries the fields of a registration request. CompanyName
// is meaningful for employers only.
type RegisterInput struct {
	Role        string
	FullName    string
	Email       string
	Phone       string
	Password    string
	CompanyName string
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a bearer token
// - UpdateProfile: edit the mutable profile fields
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user. The email is lower-cased before storing, a
// duplicate yields common.ErrorAlreadyExists, and the password is kept only
// as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	role := strings.TrimSpace(in.Role)
	fullName := strings.TrimSpace(in.FullName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)

	if !common.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role", common.ErrorInvalidInput)
	}
	if fullName == "" || email == "" || phone == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: fullname, email, phone and password are required", common.ErrorInvalidInput)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Role:         role,
		FullName:     fullName,
		CompanyName:  strings.TrimSpace(in.CompanyName),
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a signed token
// together with the user record. Unknown email and wrong password produce
// the same error so the response does not reveal which one failed. When a
// role is supplied it must match the stored one.
func (s *UserService) Login(ctx context.Context, email, password, role string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthenticated
		}
		return "", nil, common.ErrorInternal
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, common.ErrorUnauthenticated
	}
	if role != "" && role != user.Role {
		return "", nil, common.ErrorUnauthenticated
	}

	token, err := auth.GenerateToken(user.ID, user.Role, user.Email, user.FullName, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	return token, user, nil
}

// UpdateProfile edits the mutable profile fields. Email and role are
// immutable.
func (s *UserService) UpdateProfile(ctx context.Context, userID, fullName, phone, companyName string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: fullname is required", common.ErrorInvalidInput)
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.UpdateProfile(ctx, userID, fullName, strings.TrimSpace(phone), strings.TrimSpace(companyName))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating profile: %v", err)
	}
	return u, nil
}
