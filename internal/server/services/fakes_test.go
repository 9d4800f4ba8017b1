package services

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/vmelnikov/jobport/internal/dbx"
	"github.com/vmelnikov/jobport/internal/server/models"
	applicationsrepo "github.com/vmelnikov/jobport/internal/server/repositories/applications"
	contactsrepo "github.com/vmelnikov/jobport/internal/server/repositories/contacts"
	jobsrepo "github.com/vmelnikov/jobport/internal/server/repositories/jobs"
	savedjobsrepo "github.com/vmelnikov/jobport/internal/server/repositories/savedjobs"
	usersrepo "github.com/vmelnikov/jobport/internal/server/repositories/users"
	codesrepo "github.com/vmelnikov/jobport/internal/server/repositories/verificationcodes"
)

// --- shared fakes for service tests ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut   *models.User
	createErr   error
	createCalls int

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	updateOut *models.User
	updateErr error

	counts map[string]int64
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) UpdateProfile(ctx context.Context, id, fullName, phone, companyName string) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeUsersRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	return f.counts[role], nil
}

type fakeJobsRepo struct {
	createOut *models.Job
	createErr error

	byIDOut *models.Job
	byIDErr error

	listOut []*models.Job
	listErr error

	byEmployerOut []*models.Job
	byEmployerErr error

	updateOut *models.Job
	updateErr error

	deleteErr error

	countOut int64

	lastCreated *models.Job
}

func (f *fakeJobsRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	f.lastCreated = job
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return job, nil
}

func (f *fakeJobsRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeJobsRepo) List(ctx context.Context, filter models.JobFilter) ([]*models.Job, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeJobsRepo) ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error) {
	if f.byEmployerErr != nil {
		return nil, f.byEmployerErr
	}
	return f.byEmployerOut, nil
}

func (f *fakeJobsRepo) Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeJobsRepo) Delete(ctx context.Context, id string) error { return f.deleteErr }

func (f *fakeJobsRepo) Count(ctx context.Context) (int64, error) { return f.countOut, nil }

type fakeApplicationsRepo struct {
	createOut *models.Application
	createErr error

	byIDOut *models.Application
	byIDErr error

	bySeekerOut []*models.ApplicationWithJob
	bySeekerErr error

	byEmployerOut []*models.Applicant
	byEmployerErr error

	updateStatusErr error

	countOut int64

	lastCreated    *models.Application
	lastStatusID   string
	lastStatusSet  string
	createCalls    int
	updateCalls    int
	countEmployers []string
}

func (f *fakeApplicationsRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	f.createCalls++
	f.lastCreated = app
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return app, nil
}

func (f *fakeApplicationsRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeApplicationsRepo) ListBySeeker(ctx context.Context, seekerID string) ([]*models.ApplicationWithJob, error) {
	if f.bySeekerErr != nil {
		return nil, f.bySeekerErr
	}
	return f.bySeekerOut, nil
}

func (f *fakeApplicationsRepo) ListByEmployer(ctx context.Context, employerID string) ([]*models.Applicant, error) {
	if f.byEmployerErr != nil {
		return nil, f.byEmployerErr
	}
	return f.byEmployerOut, nil
}

func (f *fakeApplicationsRepo) UpdateStatus(ctx context.Context, id, status string) error {
	f.updateCalls++
	f.lastStatusID = id
	f.lastStatusSet = status
	return f.updateStatusErr
}

func (f *fakeApplicationsRepo) CountByEmployer(ctx context.Context, employerID string) (int64, error) {
	f.countEmployers = append(f.countEmployers, employerID)
	return f.countOut, nil
}

type fakeSavedJobsRepo struct {
	saveOut *models.SavedJob
	saveErr error

	findOut *models.SavedJob
	findErr error

	listOut []*models.SavedJob
	listErr error

	deleteErr error

	lastSaved   *models.SavedJob
	deleteCalls int
}

func (f *fakeSavedJobsRepo) Save(ctx context.Context, saved *models.SavedJob) (*models.SavedJob, error) {
	f.lastSaved = saved
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if f.saveOut != nil {
		return f.saveOut, nil
	}
	return saved, nil
}

func (f *fakeSavedJobsRepo) Find(ctx context.Context, seekerID, jobID string) (*models.SavedJob, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeSavedJobsRepo) List(ctx context.Context, seekerID string) ([]*models.SavedJob, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeSavedJobsRepo) Delete(ctx context.Context, seekerID, jobID string) error {
	f.deleteCalls++
	return f.deleteErr
}

type fakeContactsRepo struct {
	createOut *models.Contact
	createErr error
}

func (f *fakeContactsRepo) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return contact, nil
}

type fakeCodesRepo struct {
	upsertErr error

	findOut *models.VerificationCode
	findErr error

	deleteErr error

	lastEmail   string
	lastCode    string
	lastTTL     time.Duration
	deleteCalls int
}

func (f *fakeCodesRepo) Upsert(ctx context.Context, email, code string, ttl time.Duration) error {
	f.lastEmail, f.lastCode, f.lastTTL = email, code, ttl
	return f.upsertErr
}

func (f *fakeCodesRepo) Find(ctx context.Context, email string) (*models.VerificationCode, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeCodesRepo) Delete(ctx context.Context, email string) error {
	f.deleteCalls++
	return f.deleteErr
}

type fakeRepoManager struct {
	users        *fakeUsersRepo
	jobs         *fakeJobsRepo
	applications *fakeApplicationsRepo
	savedJobs    *fakeSavedJobsRepo
	contacts     *fakeContactsRepo
	codes        *fakeCodesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.users }

func (m *fakeRepoManager) Jobs(db dbx.DBTX) jobsrepo.Repository { return m.jobs }

func (m *fakeRepoManager) Applications(db dbx.DBTX) applicationsrepo.Repository {
	return m.applications
}

func (m *fakeRepoManager) SavedJobs(db dbx.DBTX) savedjobsrepo.Repository { return m.savedJobs }

func (m *fakeRepoManager) Contacts(db dbx.DBTX) contactsrepo.Repository { return m.contacts }

func (m *fakeRepoManager) VerificationCodes(db dbx.DBTX) codesrepo.Repository { return m.codes }

type fakeResumeStore struct {
	key string
	err error

	calls         int
	lastFilename  string
	lastBodyBytes []byte
}

func (f *fakeResumeStore) Store(ctx context.Context, filename string, data io.Reader) (string, error) {
	f.calls++
	f.lastFilename = filename
	if data != nil {
		f.lastBodyBytes, _ = io.ReadAll(data)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.key, nil
}

type fakeSender struct {
	err error

	lastEmail string
	lastCode  string
}

func (f *fakeSender) Send(ctx context.Context, email, code string) error {
	f.lastEmail, f.lastCode = email, code
	return f.err
}
