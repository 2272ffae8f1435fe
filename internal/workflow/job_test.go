package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"scholargate/internal/models"
)

type fakeJobStore struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*models.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[uuid.UUID]*models.Job)}
}

func (f *fakeJobStore) FindByID(id uuid.UUID) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobStore) Create(j *models.Job) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *j
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.jobs[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeJobStore) Update(j *models.Job) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[j.ID]; !ok {
		return nil, nil
	}
	cp := *j
	cp.UpdatedAt = time.Now()
	f.jobs[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeJobStore) UpdateStatus(id uuid.UUID, status models.PostStatus) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	j.Status = status
	cp := *j
	return &cp, nil
}

func (f *fakeJobStore) Delete(id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[id]; !ok {
		return false, nil
	}
	delete(f.jobs, id)
	return true, nil
}

func TestJobCreate_Validation(t *testing.T) {
	svc := NewJobService(newFakeJobStore())
	ctx := context.Background()

	cases := []*JobInput{
		{},
		{Title: strPtr("Research Assistant")},
		{Description: strPtr("only description")},
	}
	for i, in := range cases {
		_, err := svc.Create(ctx, in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("case %d: got %v, want ValidationError", i, err)
		}
	}
}

func TestJobCreate_DefaultsAndSlug(t *testing.T) {
	svc := NewJobService(newFakeJobStore())

	job, err := svc.Create(context.Background(), &JobInput{
		Title:       strPtr("Senior Go Engineer (Remote)"),
		Description: strPtr("Build backend services."),
		CompanyName: strPtr("Acme"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.Slug != "senior-go-engineer-remote" {
		t.Errorf("slug: got %q", job.Slug)
	}
	if job.Status != models.PostStatusDraft {
		t.Errorf("status: got %q, want draft", job.Status)
	}
	if job.CompanyName == nil || *job.CompanyName != "Acme" {
		t.Errorf("company: got %v", job.CompanyName)
	}
}

func TestJobUpdate_PartialFields(t *testing.T) {
	svc := NewJobService(newFakeJobStore())
	ctx := context.Background()

	job, err := svc.Create(ctx, &JobInput{
		Title:       strPtr("Original Role"),
		Description: strPtr("desc"),
		Location:    strPtr("Berlin"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	originalSlug := job.Slug

	updated, err := svc.Update(ctx, job.ID, &JobInput{
		Title:    strPtr("Renamed Role"),
		Location: strPtr(""), // explicit clear
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Renamed Role" {
		t.Errorf("title: got %q", updated.Title)
	}
	if updated.Slug != originalSlug {
		t.Errorf("slug changed on title edit: got %q, want %q", updated.Slug, originalSlug)
	}
	if updated.Location != nil {
		t.Errorf("location: got %v, want cleared", *updated.Location)
	}
	if updated.Description != "desc" {
		t.Errorf("description: got %q, want untouched", updated.Description)
	}
}

func TestJobUpdate_NotFound(t *testing.T) {
	svc := NewJobService(newFakeJobStore())

	_, err := svc.Update(context.Background(), uuid.New(), &JobInput{Title: strPtr("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestJobUpdateStatus(t *testing.T) {
	svc := NewJobService(newFakeJobStore())
	ctx := context.Background()

	job, err := svc.Create(ctx, &JobInput{Title: strPtr("Flips"), Description: strPtr("d")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, job.ID, models.PostStatusPublished)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.PostStatusPublished {
		t.Errorf("status: got %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(ctx, job.ID, models.PostStatus("archived")); err == nil {
		t.Error("invalid status accepted")
	}
	if _, err := svc.UpdateStatus(ctx, uuid.New(), models.PostStatusDraft); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing job: got %v, want ErrNotFound", err)
	}
}

func TestJobDelete(t *testing.T) {
	svc := NewJobService(newFakeJobStore())
	ctx := context.Background()

	job, err := svc.Create(ctx, &JobInput{Title: strPtr("Gone"), Description: strPtr("d")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, job.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, job.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}
