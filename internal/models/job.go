// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Job represents a job listing. Jobs share the draft/published lifecycle
// with posts but have no tag or degree-level relations and no newsletter
// fan-out on publish.
type Job struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Slug                string     `json:"slug"`
	CompanyName         *string    `json:"company_name,omitempty"`
	Location            *string    `json:"location,omitempty"`
	Description         string     `json:"description"`
	Requirements        *string    `json:"requirements,omitempty"`
	SalaryRange         *string    `json:"salary_range,omitempty"`
	EmploymentTypeID    *uuid.UUID `json:"employment_type_id,omitempty"`
	ApplyLink           *string    `json:"apply_link,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	Status              PostStatus `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
