// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// ScholarGate API. Everything lives under /api; write endpoints get the
// rate limiter when one is configured.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"scholargate/internal/handlers"
	"scholargate/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter may be nil when Redis is not
// configured.
func New(posts *handlers.Posts, jobs *handlers.Jobs, taxonomy *handlers.Taxonomy, newsletter *handlers.Newsletter, upload *handlers.Upload, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	limited := func(next http.Handler) http.Handler { return next }
	if limiter != nil {
		limited = limiter.Middleware
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", posts.List)
			r.Get("/{id}", posts.Get)
			r.Get("/slug/{slug}", posts.GetBySlug)

			r.Group(func(r chi.Router) {
				r.Use(limited)
				r.Post("/", posts.Create)
				r.Put("/{id}", posts.Update)
				r.Patch("/{id}/status", posts.UpdateStatus)
				r.Delete("/{id}", posts.Delete)
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobs.List)
			r.Get("/{id}", jobs.Get)

			r.Group(func(r chi.Router) {
				r.Use(limited)
				r.Post("/", jobs.Create)
				r.Put("/{id}", jobs.Update)
				r.Patch("/{id}/status", jobs.UpdateStatus)
				r.Delete("/{id}", jobs.Delete)
			})
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", taxonomy.TagsList)

			r.Group(func(r chi.Router) {
				r.Use(limited)
				r.Post("/", taxonomy.TagCreate)
				r.Put("/{id}", taxonomy.TagUpdate)
				r.Delete("/{id}", taxonomy.TagDelete)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", taxonomy.CategoriesList)
			r.Get("/{slug}/posts", taxonomy.PostsByCategory)

			r.Group(func(r chi.Router) {
				r.Use(limited)
				r.Post("/", taxonomy.CategoryCreate)
				r.Put("/{id}", taxonomy.CategoryUpdate)
				r.Delete("/{id}", taxonomy.CategoryDelete)
			})
		})

		r.Route("/countries", func(r chi.Router) {
			r.Get("/", taxonomy.CountriesList)
			r.Get("/{slug}/posts", taxonomy.PostsByCountry)

			r.Group(func(r chi.Router) {
				r.Use(limited)
				r.Post("/", taxonomy.CountryCreate)
				r.Put("/{id}", taxonomy.CountryUpdate)
				r.Delete("/{id}", taxonomy.CountryDelete)
			})
		})

		r.Route("/degree-levels", func(r chi.Router) {
			r.Get("/", taxonomy.DegreeLevelsList)

			r.Group(func(r chi.Router) {
				r.Use(limited)
				r.Post("/", taxonomy.DegreeLevelCreate)
				r.Put("/{id}", taxonomy.DegreeLevelUpdate)
				r.Delete("/{id}", taxonomy.DegreeLevelDelete)
			})
		})

		r.Get("/funding-types", taxonomy.FundingTypesList)
		r.Get("/employment-types", taxonomy.EmploymentTypesList)
		r.Get("/quotes/daily", taxonomy.DailyQuote)

		r.Route("/newsletter", func(r chi.Router) {
			r.Use(limited)
			r.Post("/subscribe", newsletter.Subscribe)
			r.Post("/unsubscribe", newsletter.Unsubscribe)
		})

		r.With(limited).Post("/upload", upload.Image)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"success":true,"message":"ok"}`))
}
