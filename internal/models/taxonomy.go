// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag labels posts. Tags are created lazily when a post references a tag
// name with no existing slug match.
type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Category groups posts by topic. A post has at most one category.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Country is the study-destination lookup for scholarship posts.
type Country struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Code        string    `json:"code"`
	FlagEmoji   *string   `json:"flag_emoji,omitempty"`
	Region      *string   `json:"region,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FundingType describes how a scholarship is funded (fully funded,
// partial, tuition waiver, ...).
type FundingType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// DegreeLevel is the academic-level lookup (Bachelors, Masters, PhD, ...).
// Degree levels are seeded, never created by the content workflow.
type DegreeLevel struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
}

// EmploymentType is the job-listing lookup (full-time, part-time, ...).
type EmploymentType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Quote is a motivational quote shown on the public site.
type Quote struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Author    *string   `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
