package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vmelnikov/jobport/internal/common"
	"github.com/vmelnikov/jobport/internal/server/models"
	"github.com/vmelnikov/jobport/internal/server/repositories/repomanager"
)

func newJobService(t *testing.T, rm repomanager.RepositoryManager) *JobService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	return NewJobService(db, rm)
}

func TestJobCreate_DenormalizesCompany(t *testing.T) {
	users := &fakeUsersRepo{byIDOut: &models.User{
		ID: "e1", Role: common.RoleEmployer, CompanyName: "Acme Corp",
	}}
	jobs := &fakeJobsRepo{}
	s := newJobService(t, &fakeRepoManager{users: users, jobs: jobs})

	job, err := s.Create(context.Background(), "e1", &models.Job{
		Title: "Go Developer", Description: "Backend work",
		Location: "Riga", Type: "Full-time",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if job.Company != "Acme Corp" {
		t.Errorf("expected denormalized company, got %q", job.Company)
	}
	if jobs.lastCreated.EmployerID != "e1" {
		t.Errorf("expected employer id on created job, got %q", jobs.lastCreated.EmployerID)
	}
}

func TestJobCreate_NotAnEmployer(t *testing.T) {
	users := &fakeUsersRepo{byIDOut: &models.User{ID: "u1", Role: common.RoleJobSeeker}}
	s := newJobService(t, &fakeRepoManager{users: users, jobs: &fakeJobsRepo{}})

	_, err := s.Create(context.Background(), "u1", &models.Job{
		Title: "X", Description: "Y", Location: "Z", Type: "Full-time",
	})
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("expected ErrorForbidden, got %v", err)
	}
}

func TestJobCreate_MissingEmployer(t *testing.T) {
	users := &fakeUsersRepo{byIDErr: common.ErrorNotFound}
	s := newJobService(t, &fakeRepoManager{users: users, jobs: &fakeJobsRepo{}})

	_, err := s.Create(context.Background(), "missing", &models.Job{
		Title: "X", Description: "Y", Location: "Z", Type: "Full-time",
	})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestJobCreate_MissingRequiredFields(t *testing.T) {
	users := &fakeUsersRepo{byIDOut: &models.User{ID: "e1", Role: common.RoleEmployer}}
	s := newJobService(t, &fakeRepoManager{users: users, jobs: &fakeJobsRepo{}})

	_, err := s.Create(context.Background(), "e1", &models.Job{Title: "Only title"})
	if !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("expected ErrorInvalidInput, got %v", err)
	}
}

func TestJobUpdate_NotOwner(t *testing.T) {
	jobs := &fakeJobsRepo{byIDOut: &models.Job{ID: "j1", EmployerID: "e1"}}
	s := newJobService(t, &fakeRepoManager{jobs: jobs})

	title := "New"
	_, err := s.Update(context.Background(), "j1", "e2", common.RoleEmployer, models.JobPatch{Title: &title})
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("expected ErrorForbidden, got %v", err)
	}
}

func TestJobUpdate_SeekerForbidden(t *testing.T) {
	jobs := &fakeJobsRepo{byIDOut: &models.Job{ID: "j1", EmployerID: "e1"}}
	s := newJobService(t, &fakeRepoManager{jobs: jobs})

	_, err := s.Update(context.Background(), "j1", "e1", common.RoleJobSeeker, models.JobPatch{})
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("expected ErrorForbidden, got %v", err)
	}
}

func TestJobUpdate_Owner(t *testing.T) {
	jobs := &fakeJobsRepo{
		byIDOut:   &models.Job{ID: "j1", EmployerID: "e1"},
		updateOut: &models.Job{ID: "j1", EmployerID: "e1", Title: "New"},
	}
	s := newJobService(t, &fakeRepoManager{jobs: jobs})

	title := "New"
	updated, err := s.Update(context.Background(), "j1", "e1", common.RoleEmployer, models.JobPatch{Title: &title})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "New" {
		t.Errorf("unexpected title: %q", updated.Title)
	}
}

func TestJobDelete_MissingJob(t *testing.T) {
	jobs := &fakeJobsRepo{byIDErr: common.ErrorNotFound}
	s := newJobService(t, &fakeRepoManager{jobs: jobs})

	err := s.Delete(context.Background(), "missing", "e1", common.RoleEmployer)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestJobDelete_Owner(t *testing.T) {
	jobs := &fakeJobsRepo{byIDOut: &models.Job{ID: "j1", EmployerID: "e1"}}
	s := newJobService(t, &fakeRepoManager{jobs: jobs})

	if err := s.Delete(context.Background(), "j1", "e1", common.RoleEmployer); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestJobGet_NotFound(t *testing.T) {
	jobs := &fakeJobsRepo{byIDErr: common.ErrorNotFound}
	s := newJobService(t, &fakeRepoManager{jobs: jobs})

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
