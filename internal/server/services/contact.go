package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/server/models"
	"github.com/vmelnikov/jobport/internal/server/repositories/repomanager"
)

// ContactService records contact-form submissions.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// Submit stores a contact message. EmployerID is optional and set when the
// message targets a specific employer.
func (s *ContactService) Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if strings.TrimSpace(contact.FullName) == "" || strings.TrimSpace(contact.EmailAddress) == "" ||
		strings.TrimSpace(contact.Subject) == "" || strings.TrimSpace(contact.Description) == "" {
		return nil, fmt.Errorf("%w: fullName, emailAddress, subject and description are required", common.ErrorInvalidInput)
	}

	created, err := s.repomanager.Contacts(s.db).Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("error saving contact message: %v", err)
	}
	return created, nil
}
