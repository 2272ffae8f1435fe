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

// CategoryStore handles content category lookup rows.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories ordered by name.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(
		`SELECT id, name, slug, description, created_at FROM categories ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a category by slug. Returns nil if not found.
func (s *CategoryStore) FindBySlug(slug string) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRow(
		`SELECT id, name, slug, description, created_at FROM categories WHERE slug = $1`, slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new category.
func (s *CategoryStore) Create(name, slug string, description *string) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRow(
		`INSERT INTO categories (name, slug, description) VALUES ($1, $2, $3)
		 RETURNING id, name, slug, description, created_at`,
		name, slug, description,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// Update modifies a category. Returns nil if not found.
func (s *CategoryStore) Update(id uuid.UUID, name, slug string, description *string) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRow(
		`UPDATE categories SET name = $1, slug = $2, description = $3 WHERE id = $4
		 RETURNING id, name, slug, description, created_at`,
		name, slug, description, id,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes a category by ID.
func (s *CategoryStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// CountryStore handles study-destination lookup rows.
type CountryStore struct {
	db *sql.DB
}

// NewCountryStore creates a new CountryStore.
func NewCountryStore(db *sql.DB) *CountryStore {
	return &CountryStore{db: db}
}

// List returns all countries ordered by name.
func (s *CountryStore) List() ([]models.Country, error) {
	rows, err := s.db.Query(`
		SELECT id, name, slug, code, flag_emoji, region, description, created_at
		FROM countries ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var items []models.Country
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Code, &c.FlagEmoji,
			&c.Region, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a country by slug. Returns nil if not found.
func (s *CountryStore) FindBySlug(slug string) (*models.Country, error) {
	c := &models.Country{}
	err := s.db.QueryRow(`
		SELECT id, name, slug, code, flag_emoji, region, description, created_at
		FROM countries WHERE slug = $1`, slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Code, &c.FlagEmoji, &c.Region, &c.Description, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find country by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new country.
func (s *CountryStore) Create(c *models.Country) (*models.Country, error) {
	created := &models.Country{}
	err := s.db.QueryRow(`
		INSERT INTO countries (name, slug, code, flag_emoji, region, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, slug, code, flag_emoji, region, description, created_at`,
		c.Name, c.Slug, c.Code, c.FlagEmoji, c.Region, c.Description,
	).Scan(&created.ID, &created.Name, &created.Slug, &created.Code,
		&created.FlagEmoji, &created.Region, &created.Description, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create country: %w", err)
	}
	return created, nil
}

// Update modifies a country. Returns nil if not found.
func (s *CountryStore) Update(c *models.Country) (*models.Country, error) {
	updated := &models.Country{}
	err := s.db.QueryRow(`
		UPDATE countries SET name = $1, slug = $2, code = $3, flag_emoji = $4,
		       region = $5, description = $6
		WHERE id = $7
		RETURNING id, name, slug, code, flag_emoji, region, description, created_at`,
		c.Name, c.Slug, c.Code, c.FlagEmoji, c.Region, c.Description, c.ID,
	).Scan(&updated.ID, &updated.Name, &updated.Slug, &updated.Code,
		&updated.FlagEmoji, &updated.Region, &updated.Description, &updated.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update country: %w", err)
	}
	return updated, nil
}

// Delete removes a country by ID.
func (s *CountryStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete country: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// FundingTypeStore handles funding-type lookup rows (read-mostly, seeded).
type FundingTypeStore struct {
	db *sql.DB
}

// NewFundingTypeStore creates a new FundingTypeStore.
func NewFundingTypeStore(db *sql.DB) *FundingTypeStore {
	return &FundingTypeStore{db: db}
}

// List returns all funding types ordered by name.
func (s *FundingTypeStore) List() ([]models.FundingType, error) {
	rows, err := s.db.Query(`SELECT id, name, slug FROM funding_types ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list funding types: %w", err)
	}
	defer rows.Close()

	var items []models.FundingType
	for rows.Next() {
		var ft models.FundingType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Slug); err != nil {
			return nil, fmt.Errorf("scan funding type: %w", err)
		}
		items = append(items, ft)
	}
	return items, rows.Err()
}

// EmploymentTypeStore handles employment-type lookup rows (read-mostly, seeded).
type EmploymentTypeStore struct {
	db *sql.DB
}

// NewEmploymentTypeStore creates a new EmploymentTypeStore.
func NewEmploymentTypeStore(db *sql.DB) *EmploymentTypeStore {
	return &EmploymentTypeStore{db: db}
}

// List returns all employment types ordered by name.
func (s *EmploymentTypeStore) List() ([]models.EmploymentType, error) {
	rows, err := s.db.Query(`SELECT id, name, slug FROM employment_types ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list employment types: %w", err)
	}
	defer rows.Close()

	var items []models.EmploymentType
	for rows.Next() {
		var et models.EmploymentType
		if err := rows.Scan(&et.ID, &et.Name, &et.Slug); err != nil {
			return nil, fmt.Errorf("scan employment type: %w", err)
		}
		items = append(items, et)
	}
	return items, rows.Err()
}

// QuoteStore handles motivational quotes.
type QuoteStore struct {
	db *sql.DB
}

// NewQuoteStore creates a new QuoteStore.
func NewQuoteStore(db *sql.DB) *QuoteStore {
	return &QuoteStore{db: db}
}

// Latest returns the newest quote, or nil when the table is empty.
func (s *QuoteStore) Latest() (*models.Quote, error) {
	q := &models.Quote{}
	err := s.db.QueryRow(
		`SELECT id, text, author, created_at FROM quotes ORDER BY created_at DESC LIMIT 1`,
	).Scan(&q.ID, &q.Text, &q.Author, &q.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest quote: %w", err)
	}
	return q, nil
}
