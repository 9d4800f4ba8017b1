package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/server/config"
	"github.com/vmelnikov/jobport/internal/server/repositories/repomanager"
)

// Sender delivers a verification code to an email address. Actual delivery
// lives behind this boundary; production wires an SMTP or provider client,
// tests a recorder.
type Sender interface {
	Send(ctx context.Context, email, code string) error
}

// VerificationService issues and checks email-verification codes. Codes are
// stored with a TTL so the flow survives restarts and works across
// instances.
type VerificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sender      Sender
	ttl         time.Duration
}

func NewVerificationService(db *sql.DB, m repomanager.RepositoryManager, sender Sender, cfg *config.Config) *VerificationService {
	return &VerificationService{db: db, repomanager: m, sender: sender, ttl: cfg.VerificationCodeTTL}
}

// Start generates a 6-digit code for email, stores it with the configured
// TTL (replacing any pending code), and hands it to the sender.
func (s *VerificationService) Start(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrorInvalidInput)
	}

	code, err := common.MakeRandDigitCode(6)
	if err != nil {
		return common.ErrorInternal
	}

	if err := s.repomanager.VerificationCodes(s.db).Upsert(ctx, email, code, s.ttl); err != nil {
		return fmt.Errorf("error storing verification code: %v", err)
	}
	if err := s.sender.Send(ctx, email, code); err != nil {
		return fmt.Errorf("error sending verification code: %v", err)
	}
	return nil
}

// Check accepts a code if one is pending for email, has not expired, and
// matches. A code is single-use: it is deleted on success and on observed
// expiry.
func (s *VerificationService) Check(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	repo := s.repomanager.VerificationCodes(s.db)
	stored, err := repo.Find(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthenticated
		}
		return common.ErrorInternal
	}

	if stored.Expires.Before(time.Now()) {
		_ = repo.Delete(ctx, email)
		return common.ErrCodeExpired
	}
	if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) != 1 {
		return common.ErrorUnauthenticated
	}

	if err := repo.Delete(ctx, email); err != nil {
		return fmt.Errorf("error consuming verification code: %v", err)
	}
	return nil
}
