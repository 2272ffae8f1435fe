// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"scholargate/internal/database"
	"scholargate/internal/models"
	"scholargate/internal/newsletter"
	"scholargate/internal/store"
	"scholargate/internal/workflow"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "scholargate")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "scholargate")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// noopNotifier satisfies workflow.Notifier without sending anything.
type noopNotifier struct{}

func (noopNotifier) Dispatch(_ context.Context, _ *models.Post, recipients []string) (newsletter.Result, error) {
	return newsletter.Result{Total: len(recipients)}, nil
}

// testEnv bundles the handler groups over a real database. The fan-out
// notifier is a no-op so handler tests never touch SMTP.
type testEnv struct {
	db          *sql.DB
	router      chi.Router
	postService *workflow.PostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testDB(t)

	postStore := store.NewPostStore(db)
	jobStore := store.NewJobStore(db)
	tagStore := store.NewTagStore(db)
	categoryStore := store.NewCategoryStore(db)
	countryStore := store.NewCountryStore(db)
	degreeStore := store.NewDegreeLevelStore(db)
	fundingStore := store.NewFundingTypeStore(db)
	employmentStore := store.NewEmploymentTypeStore(db)
	quoteStore := store.NewQuoteStore(db)
	subscriberStore := store.NewSubscriberStore(db)

	postService := workflow.NewPostService(postStore, tagStore, degreeStore, subscriberStore, noopNotifier{})
	jobService := workflow.NewJobService(jobStore)

	posts := NewPosts(postService, postStore, tagStore, degreeStore)
	jobs := NewJobs(jobService, jobStore)
	taxonomy := NewTaxonomy(tagStore, categoryStore, countryStore, degreeStore, fundingStore, employmentStore, quoteStore, postStore)
	nl := NewNewsletter(subscriberStore)

	// Routes mirror the router package; built here to keep the test
	// wiring inside this package.
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", posts.List)
			r.Get("/{id}", posts.Get)
			r.Get("/slug/{slug}", posts.GetBySlug)
			r.Post("/", posts.Create)
			r.Put("/{id}", posts.Update)
			r.Patch("/{id}/status", posts.UpdateStatus)
			r.Delete("/{id}", posts.Delete)
		})
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobs.List)
			r.Get("/{id}", jobs.Get)
			r.Post("/", jobs.Create)
			r.Put("/{id}", jobs.Update)
			r.Patch("/{id}/status", jobs.UpdateStatus)
			r.Delete("/{id}", jobs.Delete)
		})
		r.Route("/tags", func(r chi.Router) {
			r.Get("/", taxonomy.TagsList)
			r.Post("/", taxonomy.TagCreate)
			r.Put("/{id}", taxonomy.TagUpdate)
			r.Delete("/{id}", taxonomy.TagDelete)
		})
		r.Get("/degree-levels", taxonomy.DegreeLevelsList)
		r.Get("/funding-types", taxonomy.FundingTypesList)
		r.Get("/employment-types", taxonomy.EmploymentTypesList)
		r.Route("/newsletter", func(r chi.Router) {
			r.Post("/subscribe", nl.Subscribe)
			r.Post("/unsubscribe", nl.Unsubscribe)
		})
	})

	return &testEnv{db: db, router: r, postService: postService}
}

// do runs a JSON request through the test router and decodes the
// response envelope.
func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)

	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a JSON envelope: %v (body %q)", err, rr.Body.String())
	}
	return rr, env
}

func (e *testEnv) cleanupPost(t *testing.T, slug string) {
	t.Helper()
	t.Cleanup(func() { e.db.Exec("DELETE FROM posts WHERE slug = $1", slug) })
}

func (e *testEnv) cleanupJob(t *testing.T, slug string) {
	t.Helper()
	t.Cleanup(func() { e.db.Exec("DELETE FROM jobs WHERE slug = $1", slug) })
}

func (e *testEnv) cleanupTag(t *testing.T, slug string) {
	t.Helper()
	t.Cleanup(func() { e.db.Exec("DELETE FROM tags WHERE slug = $1", slug) })
}

func (e *testEnv) cleanupSubscriber(t *testing.T, email string) {
	t.Helper()
	t.Cleanup(func() { e.db.Exec("DELETE FROM newsletter_subscribers WHERE email = $1", email) })
}

// dataMap re-decodes the envelope's data field as a JSON object.
func dataMap(t *testing.T, env envelope) map[string]any {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("data is not an object: %v", err)
	}
	return m
}
