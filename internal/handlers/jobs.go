// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"scholargate/internal/models"
	"scholargate/internal/store"
	"scholargate/internal/workflow"
)

// Jobs groups the job-listing HTTP handlers.
type Jobs struct {
	service *workflow.JobService
	jobs    *store.JobStore
}

// NewJobs creates the job handler group.
func NewJobs(service *workflow.JobService, jobs *store.JobStore) *Jobs {
	return &Jobs{service: service, jobs: jobs}
}

// List returns every job listing, newest first.
func (h *Jobs) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List()
	if err != nil {
		respondError(w, "list jobs", err)
		return
	}
	respondData(w, http.StatusOK, jobs)
}

// Get returns one job listing by id.
func (h *Jobs) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid job id")
		return
	}

	job, err := h.jobs.FindByID(id)
	if err != nil {
		respondError(w, "get job", err)
		return
	}
	if job == nil {
		respondNotFound(w)
		return
	}
	respondData(w, http.StatusOK, job)
}

// Create handles POST /api/jobs.
func (h *Jobs) Create(w http.ResponseWriter, r *http.Request) {
	var in workflow.JobInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}

	job, err := h.service.Create(r.Context(), &in)
	if err != nil {
		respondError(w, "create job", err)
		return
	}
	respondData(w, http.StatusCreated, job)
}

// Update handles PUT /api/jobs/{id} with partial-update semantics.
func (h *Jobs) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid job id")
		return
	}

	var in workflow.JobInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}

	job, err := h.service.Update(r.Context(), id, &in)
	if err != nil {
		respondError(w, "update job", err)
		return
	}
	respondData(w, http.StatusOK, job)
}

// UpdateStatus handles PATCH /api/jobs/{id}/status. No notification —
// only scholarship posts fan out.
func (h *Jobs) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid job id")
		return
	}

	var in struct {
		Status models.PostStatus `json:"status"`
	}
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}

	job, err := h.service.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		respondError(w, "update job status", err)
		return
	}
	respondData(w, http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/{id}.
func (h *Jobs) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid job id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, "delete job", err)
		return
	}
	respondMessage(w, http.StatusOK, "job deleted")
}
