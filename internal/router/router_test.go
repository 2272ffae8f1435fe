// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scholargate/internal/handlers"
)

// newTestRouter builds the router with empty handler groups. Routes that
// hit a store are not exercised here — only wiring that works without
// backing services.
func newTestRouter() http.Handler {
	return New(
		handlers.NewPosts(nil, nil, nil, nil),
		handlers.NewJobs(nil, nil),
		handlers.NewTaxonomy(nil, nil, nil, nil, nil, nil, nil, nil),
		handlers.NewNewsletter(nil),
		handlers.NewUpload(nil),
		nil,
	)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), `"success":true`) {
		t.Errorf("body: got %q", rr.Body.String())
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestUploadRouteWithoutStorage(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", rr.Code)
	}
}
