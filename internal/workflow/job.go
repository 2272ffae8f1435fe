// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"scholargate/internal/models"
	"scholargate/internal/slug"
)

// JobStore is the persistence surface the job workflow needs.
// Satisfied by *store.JobStore.
type JobStore interface {
	FindByID(id uuid.UUID) (*models.Job, error)
	Create(j *models.Job) (*models.Job, error)
	Update(j *models.Job) (*models.Job, error)
	UpdateStatus(id uuid.UUID, status models.PostStatus) (*models.Job, error)
	Delete(id uuid.UUID) (bool, error)
}

// JobInput carries a create or update payload for a job listing, with the
// same present/absent pointer semantics as PostInput.
type JobInput struct {
	Title               *string            `json:"title"`
	Slug                *string            `json:"slug"`
	CompanyName         *string            `json:"company_name"`
	Location            *string            `json:"location"`
	Description         *string            `json:"description"`
	Requirements        *string            `json:"requirements"`
	SalaryRange         *string            `json:"salary_range"`
	EmploymentTypeID    *uuid.UUID         `json:"employment_type_id"`
	ApplyLink           *string            `json:"apply_link"`
	ApplicationDeadline *time.Time         `json:"application_deadline"`
	Status              *models.PostStatus `json:"status"`
}

// JobService handles the job-listing lifecycle. Jobs share the post
// workflow's slug and CRUD shape but deliberately have no tag or
// degree-level relations and no newsletter fan-out on publish.
type JobService struct {
	jobs JobStore
}

// NewJobService wires a JobService.
func NewJobService(jobs JobStore) *JobService {
	return &JobService{jobs: jobs}
}

// Create validates and persists a new job listing.
func (s *JobService) Create(ctx context.Context, in *JobInput) (*models.Job, error) {
	title := deref(in.Title)
	description := deref(in.Description)
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, validationErr("title and description are required")
	}

	jobSlug := slug.Generate(title)
	if in.Slug != nil && *in.Slug != "" {
		jobSlug = slug.Generate(*in.Slug)
	}
	if jobSlug == "" {
		return nil, validationErr("title must contain at least one alphanumeric character")
	}

	status := models.PostStatusDraft
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, validationErr("status must be draft or published")
		}
		status = *in.Status
	}

	job := &models.Job{
		Title:               title,
		Slug:                jobSlug,
		Description:         description,
		Status:              status,
		CompanyName:         optional(in.CompanyName),
		Location:            optional(in.Location),
		Requirements:        optional(in.Requirements),
		SalaryRange:         optional(in.SalaryRange),
		EmploymentTypeID:    in.EmploymentTypeID,
		ApplyLink:           optional(in.ApplyLink),
		ApplicationDeadline: in.ApplicationDeadline,
	}

	return s.jobs.Create(job)
}

// Update applies a partial update to a job listing. The slug only changes
// when supplied explicitly.
func (s *JobService) Update(ctx context.Context, id uuid.UUID, in *JobInput) (*models.Job, error) {
	current, err := s.jobs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	job := *current

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		job.Title = *in.Title
	}
	if in.Slug != nil && *in.Slug != "" {
		newSlug := slug.Generate(*in.Slug)
		if newSlug == "" {
			return nil, validationErr("slug must contain at least one alphanumeric character")
		}
		job.Slug = newSlug
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) != "" {
		job.Description = *in.Description
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, validationErr("status must be draft or published")
		}
		job.Status = *in.Status
	}

	applyOptional(in.CompanyName, &job.CompanyName)
	applyOptional(in.Location, &job.Location)
	applyOptional(in.Requirements, &job.Requirements)
	applyOptional(in.SalaryRange, &job.SalaryRange)
	applyOptional(in.ApplyLink, &job.ApplyLink)

	if in.EmploymentTypeID != nil {
		job.EmploymentTypeID = in.EmploymentTypeID
	}
	if in.ApplicationDeadline != nil {
		job.ApplicationDeadline = in.ApplicationDeadline
	}

	updated, err := s.jobs.Update(&job)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// UpdateStatus flips a job between draft and published. No notification:
// only scholarship posts fan out to the newsletter.
func (s *JobService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PostStatus) (*models.Job, error) {
	if !status.Valid() {
		return nil, validationErr("status must be draft or published")
	}

	updated, err := s.jobs.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes a job listing.
func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.jobs.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
