// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the publishing state of a post or job listing.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// Valid reports whether s is one of the known statuses.
func (s PostStatus) Valid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

// Post represents a blog article. Scholarship posts carry the extra
// Scholarship* fields; regular articles leave them nil.
type Post struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Body            string     `json:"content"`
	FeaturedImage   *string    `json:"featured_image,omitempty"`
	IsFeatured      bool       `json:"is_featured"`
	Status          PostStatus `json:"status"`
	Views           int        `json:"views"`
	AuthorID        string     `json:"author_id"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	MetaKeywords    *string    `json:"meta_keywords,omitempty"`
	SEOTitle        *string    `json:"seo_title,omitempty"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	CountryID       *uuid.UUID `json:"country_id,omitempty"`
	FundingTypeID   *uuid.UUID `json:"funding_type_id,omitempty"`

	// Scholarship-specific fields.
	ScholarshipProvider   *string    `json:"scholarship_provider,omitempty"`
	UniversityName        *string    `json:"university_name,omitempty"`
	ApplicationDeadline   *time.Time `json:"application_deadline,omitempty"`
	ProgramDuration       *string    `json:"program_duration,omitempty"`
	EligibleNationalities *string    `json:"eligible_nationalities,omitempty"`
	ApplicationFee        bool       `json:"application_fee"`
	ApplicationFeeAmount  *string    `json:"application_fee_amount,omitempty"`
	OfficialWebsite       *string    `json:"official_website,omitempty"`
	ApplyLink             *string    `json:"apply_link,omitempty"`
	ScholarshipBenefits   *string    `json:"scholarship_benefits,omitempty"`
	EligibilityCriteria   *string    `json:"eligibility_criteria,omitempty"`
	RequiredDocuments     *string    `json:"required_documents,omitempty"`
	HowToApply            *string    `json:"how_to_apply,omitempty"`
	Notes                 *string    `json:"notes,omitempty"`
	ContactEmail          *string    `json:"contact_email,omitempty"`
	ApplicationMode       *string    `json:"application_mode,omitempty"`
	AvailableSeats        *int       `json:"available_seats,omitempty"`

	ScheduledPublishAt *time.Time `json:"scheduled_publish_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Virtual fields populated by store methods.
	Tags         []Tag         `json:"tags,omitempty"`
	DegreeLevels []DegreeLevel `json:"degree_levels,omitempty"`
}

// IsPublished returns true if the post is in published status.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
