// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the data access layer. Each entity gets its own
// store struct over a shared *sql.DB. Finders return (nil, nil) when no
// row matches; callers decide whether that is an error.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"scholargate/internal/models"
)

// postColumns is the full column list for posts, kept in one place so
// every query scans the same shape.
const postColumns = `
	id, title, slug, excerpt, body, featured_image, is_featured, status,
	views, author_id, meta_description, meta_keywords, seo_title,
	category_id, country_id, funding_type_id,
	scholarship_provider, university_name, application_deadline,
	program_duration, eligible_nationalities, application_fee,
	application_fee_amount, official_website, apply_link,
	scholarship_benefits, eligibility_criteria, required_documents,
	how_to_apply, notes, contact_email, application_mode, available_seats,
	scheduled_publish_at, created_at, updated_at`

// scanPost scans one posts row in postColumns order.
func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	p := &models.Post{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Body, &p.FeaturedImage,
		&p.IsFeatured, &p.Status, &p.Views, &p.AuthorID, &p.MetaDescription,
		&p.MetaKeywords, &p.SEOTitle, &p.CategoryID, &p.CountryID,
		&p.FundingTypeID, &p.ScholarshipProvider, &p.UniversityName,
		&p.ApplicationDeadline, &p.ProgramDuration, &p.EligibleNationalities,
		&p.ApplicationFee, &p.ApplicationFeeAmount, &p.OfficialWebsite,
		&p.ApplyLink, &p.ScholarshipBenefits, &p.EligibilityCriteria,
		&p.RequiredDocuments, &p.HowToApply, &p.Notes, &p.ContactEmail,
		&p.ApplicationMode, &p.AvailableSeats, &p.ScheduledPublishAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// List returns all posts ordered by creation date descending.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`SELECT` + postColumns + ` FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListPublished returns all published posts, newest first.
func (s *PostStore) ListPublished() ([]models.Post, error) {
	rows, err := s.db.Query(
		`SELECT`+postColumns+` FROM posts WHERE status = $1 ORDER BY created_at DESC`,
		models.PostStatusPublished,
	)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListByCategory returns posts assigned to the given category, newest first.
func (s *PostStore) ListByCategory(categoryID uuid.UUID) ([]models.Post, error) {
	rows, err := s.db.Query(
		`SELECT`+postColumns+` FROM posts WHERE category_id = $1 ORDER BY created_at DESC`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListByCountry returns published posts for the given country, newest first.
func (s *PostStore) ListByCountry(countryID uuid.UUID) ([]models.Post, error) {
	rows, err := s.db.Query(
		`SELECT`+postColumns+` FROM posts WHERE country_id = $1 AND status = $2 ORDER BY created_at DESC`,
		countryID, models.PostStatusPublished,
	)
	if err != nil {
		return nil, fmt.Errorf("list posts by country: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListScheduledDue returns draft posts whose scheduled publish time is at
// or before now. Used by the scheduled publisher.
func (s *PostStore) ListScheduledDue(now time.Time) ([]models.Post, error) {
	rows, err := s.db.Query(
		`SELECT`+postColumns+` FROM posts
		 WHERE status = $1 AND scheduled_publish_at IS NOT NULL AND scheduled_publish_at <= $2
		 ORDER BY scheduled_publish_at ASC`,
		models.PostStatusDraft, now,
	)
	if err != nil {
		return nil, fmt.Errorf("list scheduled posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	p, err := scanPost(s.db.QueryRow(`SELECT`+postColumns+` FROM posts WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a post by its slug. Returns nil if not found.
func (s *PostStore) FindBySlug(slug string) (*models.Post, error) {
	p, err := scanPost(s.db.QueryRow(`SELECT`+postColumns+` FROM posts WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with generated ID and timestamps.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	created, err := scanPost(s.db.QueryRow(`
		INSERT INTO posts (
			title, slug, excerpt, body, featured_image, is_featured, status,
			author_id, meta_description, meta_keywords, seo_title,
			category_id, country_id, funding_type_id,
			scholarship_provider, university_name, application_deadline,
			program_duration, eligible_nationalities, application_fee,
			application_fee_amount, official_website, apply_link,
			scholarship_benefits, eligibility_criteria, required_documents,
			how_to_apply, notes, contact_email, application_mode,
			available_seats, scheduled_publish_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
		        $27, $28, $29, $30, $31, $32)
		RETURNING`+postColumns,
		p.Title, p.Slug, p.Excerpt, p.Body, p.FeaturedImage, p.IsFeatured,
		p.Status, p.AuthorID, p.MetaDescription, p.MetaKeywords, p.SEOTitle,
		p.CategoryID, p.CountryID, p.FundingTypeID, p.ScholarshipProvider,
		p.UniversityName, p.ApplicationDeadline, p.ProgramDuration,
		p.EligibleNationalities, p.ApplicationFee, p.ApplicationFeeAmount,
		p.OfficialWebsite, p.ApplyLink, p.ScholarshipBenefits,
		p.EligibilityCriteria, p.RequiredDocuments, p.HowToApply, p.Notes,
		p.ContactEmail, p.ApplicationMode, p.AvailableSeats,
		p.ScheduledPublishAt,
	))
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// Update writes the full post row and returns the updated post.
// Returns nil if no post matches the ID.
func (s *PostStore) Update(p *models.Post) (*models.Post, error) {
	updated, err := scanPost(s.db.QueryRow(`
		UPDATE posts SET
			title = $1, slug = $2, excerpt = $3, body = $4,
			featured_image = $5, is_featured = $6, status = $7,
			meta_description = $8, meta_keywords = $9, seo_title = $10,
			category_id = $11, country_id = $12, funding_type_id = $13,
			scholarship_provider = $14, university_name = $15,
			application_deadline = $16, program_duration = $17,
			eligible_nationalities = $18, application_fee = $19,
			application_fee_amount = $20, official_website = $21,
			apply_link = $22, scholarship_benefits = $23,
			eligibility_criteria = $24, required_documents = $25,
			how_to_apply = $26, notes = $27, contact_email = $28,
			application_mode = $29, available_seats = $30,
			scheduled_publish_at = $31, updated_at = NOW()
		WHERE id = $32
		RETURNING`+postColumns,
		p.Title, p.Slug, p.Excerpt, p.Body, p.FeaturedImage, p.IsFeatured,
		p.Status, p.MetaDescription, p.MetaKeywords, p.SEOTitle,
		p.CategoryID, p.CountryID, p.FundingTypeID, p.ScholarshipProvider,
		p.UniversityName, p.ApplicationDeadline, p.ProgramDuration,
		p.EligibleNationalities, p.ApplicationFee, p.ApplicationFeeAmount,
		p.OfficialWebsite, p.ApplyLink, p.ScholarshipBenefits,
		p.EligibilityCriteria, p.RequiredDocuments, p.HowToApply, p.Notes,
		p.ContactEmail, p.ApplicationMode, p.AvailableSeats,
		p.ScheduledPublishAt, p.ID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

// UpdateStatus changes only the status of a post and returns the updated
// row. Returns nil if no post matches the ID.
func (s *PostStore) UpdateStatus(id uuid.UUID, status models.PostStatus) (*models.Post, error) {
	updated, err := scanPost(s.db.QueryRow(
		`UPDATE posts SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING`+postColumns,
		status, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update post status: %w", err)
	}
	return updated, nil
}

// IncrementViews bumps the view counter for a post.
func (s *PostStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// Delete removes a post by ID. Join rows cascade at the schema level.
// Returns false if no post matched.
func (s *PostStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post rows affected: %w", err)
	}
	return n > 0, nil
}
