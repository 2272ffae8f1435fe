// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"scholargate/internal/models"
)

const jobColumns = `
	id, title, slug, company_name, location, description, requirements,
	salary_range, employment_type_id, apply_link, application_deadline,
	status, created_at, updated_at`

func scanJob(row interface{ Scan(...any) error }) (*models.Job, error) {
	j := &models.Job{}
	err := row.Scan(
		&j.ID, &j.Title, &j.Slug, &j.CompanyName, &j.Location, &j.Description,
		&j.Requirements, &j.SalaryRange, &j.EmploymentTypeID, &j.ApplyLink,
		&j.ApplicationDeadline, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// JobStore handles all job-listing database operations.
type JobStore struct {
	db *sql.DB
}

// NewJobStore creates a new JobStore with the given database connection.
func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{db: db}
}

// List returns all job listings ordered by creation date descending.
func (s *JobStore) List() ([]models.Job, error) {
	rows, err := s.db.Query(`SELECT` + jobColumns + ` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var items []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		items = append(items, *j)
	}
	return items, rows.Err()
}

// FindByID retrieves a job by its UUID. Returns nil if not found.
func (s *JobStore) FindByID(id uuid.UUID) (*models.Job, error) {
	j, err := scanJob(s.db.QueryRow(`SELECT`+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job by id: %w", err)
	}
	return j, nil
}

// Create inserts a new job listing and returns it with the generated ID.
func (s *JobStore) Create(j *models.Job) (*models.Job, error) {
	created, err := scanJob(s.db.QueryRow(`
		INSERT INTO jobs (
			title, slug, company_name, location, description, requirements,
			salary_range, employment_type_id, apply_link,
			application_deadline, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING`+jobColumns,
		j.Title, j.Slug, j.CompanyName, j.Location, j.Description,
		j.Requirements, j.SalaryRange, j.EmploymentTypeID, j.ApplyLink,
		j.ApplicationDeadline, j.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return created, nil
}

// Update writes the full job row and returns the updated job.
// Returns nil if no job matches the ID.
func (s *JobStore) Update(j *models.Job) (*models.Job, error) {
	updated, err := scanJob(s.db.QueryRow(`
		UPDATE jobs SET
			title = $1, slug = $2, company_name = $3, location = $4,
			description = $5, requirements = $6, salary_range = $7,
			employment_type_id = $8, apply_link = $9,
			application_deadline = $10, status = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING`+jobColumns,
		j.Title, j.Slug, j.CompanyName, j.Location, j.Description,
		j.Requirements, j.SalaryRange, j.EmploymentTypeID, j.ApplyLink,
		j.ApplicationDeadline, j.Status, j.ID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return updated, nil
}

// UpdateStatus changes only the status of a job listing.
// Returns nil if no job matches the ID.
func (s *JobStore) UpdateStatus(id uuid.UUID, status models.PostStatus) (*models.Job, error) {
	updated, err := scanJob(s.db.QueryRow(
		`UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING`+jobColumns,
		status, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update job status: %w", err)
	}
	return updated, nil
}

// Delete removes a job by ID. Returns false if no job matched.
func (s *JobStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete job rows affected: %w", err)
	}
	return n > 0, nil
}
