// workflow_test.go provides in-memory fakes for the workflow's collaborator
// interfaces. The fakes keep enough state to assert on link sets and
// dispatch calls without a database.
package workflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"scholargate/internal/models"
	"scholargate/internal/newsletter"
)

type fakePostStore struct {
	mu    sync.Mutex
	posts map[uuid.UUID]*models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[uuid.UUID]*models.Post)}
}

func (f *fakePostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostStore) Create(p *models.Post) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.posts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakePostStore) Update(p *models.Post) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[p.ID]; !ok {
		return nil, nil
	}
	cp := *p
	cp.UpdatedAt = time.Now()
	f.posts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakePostStore) UpdateStatus(id uuid.UUID, status models.PostStatus) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	p.Status = status
	cp := *p
	return &cp, nil
}

func (f *fakePostStore) Delete(id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return false, nil
	}
	delete(f.posts, id)
	return true, nil
}

type fakeTagStore struct {
	mu         sync.Mutex
	bySlug     map[string]*models.Tag
	links      map[uuid.UUID]map[uuid.UUID]bool // postID → set of tagIDs
	created    []string                         // slugs in creation order
	failCreate map[string]bool                  // slugs whose creation fails
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{
		bySlug:     make(map[string]*models.Tag),
		links:      make(map[uuid.UUID]map[uuid.UUID]bool),
		failCreate: make(map[string]bool),
	}
}

func (f *fakeTagStore) FindBySlug(slug string) (*models.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.bySlug[slug]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTagStore) Create(name, slug string) (*models.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate[slug] {
		return nil, errors.New("tag insert failed")
	}
	t := &models.Tag{ID: uuid.New(), Name: name, Slug: slug}
	f.bySlug[slug] = t
	f.created = append(f.created, slug)
	cp := *t
	return &cp, nil
}

func (f *fakeTagStore) UnlinkAll(postID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.links, postID)
	return nil
}

func (f *fakeTagStore) Link(postID, tagID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.links[postID] == nil {
		f.links[postID] = make(map[uuid.UUID]bool)
	}
	f.links[postID][tagID] = true
	return nil
}

func (f *fakeTagStore) linkCount(postID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.links[postID])
}

func (f *fakeTagStore) linkedSlugs(postID uuid.UUID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var slugs []string
	for slug, t := range f.bySlug {
		if f.links[postID][t.ID] {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}

type fakeDegreeLinker struct {
	mu    sync.Mutex
	links map[uuid.UUID][]uuid.UUID
}

func newFakeDegreeLinker() *fakeDegreeLinker {
	return &fakeDegreeLinker{links: make(map[uuid.UUID][]uuid.UUID)}
}

func (f *fakeDegreeLinker) UnlinkAll(postID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.links, postID)
	return nil
}

func (f *fakeDegreeLinker) LinkMany(postID uuid.UUID, ids []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links[postID] = append(f.links[postID], ids...)
	return nil
}

type fakeSubscribers struct {
	emails []string
	err    error
}

func (f *fakeSubscribers) ListActiveEmails() ([]string, error) {
	return f.emails, f.err
}

type dispatchCall struct {
	post       *models.Post
	recipients []string
}

// fakeNotifier records dispatch calls. When blockCh is non-nil, Dispatch
// blocks until the channel closes, which lets tests prove the workflow
// does not wait on the fan-out.
type fakeNotifier struct {
	mu      sync.Mutex
	calls   []dispatchCall
	blockCh chan struct{}
	err     error
}

func (f *fakeNotifier) Dispatch(_ context.Context, post *models.Post, recipients []string) (newsletter.Result, error) {
	if f.blockCh != nil {
		<-f.blockCh
	}
	f.mu.Lock()
	f.calls = append(f.calls, dispatchCall{post: post, recipients: recipients})
	f.mu.Unlock()
	if f.err != nil {
		return newsletter.Result{}, f.err
	}
	return newsletter.Result{Sent: len(recipients), Total: len(recipients)}, nil
}

func (f *fakeNotifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// testService wires a PostService over fresh fakes.
func testService() (*PostService, *fakePostStore, *fakeTagStore, *fakeDegreeLinker, *fakeSubscribers, *fakeNotifier) {
	posts := newFakePostStore()
	tags := newFakeTagStore()
	degrees := newFakeDegreeLinker()
	subs := &fakeSubscribers{emails: []string{"a@example.com", "b@example.com"}}
	notifier := &fakeNotifier{}
	svc := NewPostService(posts, tags, degrees, subs, notifier)
	return svc, posts, tags, degrees, subs, notifier
}

func strPtr(s string) *string                       { return &s }
func boolPtr(b bool) *bool                          { return &b }
func statusPtr(s models.PostStatus) *models.PostStatus { return &s }
