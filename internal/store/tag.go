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

// TagStore handles tags and the post_tags join table.
type TagStore struct {
	db *sql.DB
}

// NewTagStore creates a new TagStore with the given database connection.
func NewTagStore(db *sql.DB) *TagStore {
	return &TagStore{db: db}
}

// List returns all tags ordered by name.
func (s *TagStore) List() ([]models.Tag, error) {
	rows, err := s.db.Query(`SELECT id, name, slug FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var items []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a tag by its slug. Returns nil if not found.
func (s *TagStore) FindBySlug(slug string) (*models.Tag, error) {
	t := &models.Tag{}
	err := s.db.QueryRow(
		`SELECT id, name, slug FROM tags WHERE slug = $1`, slug,
	).Scan(&t.ID, &t.Name, &t.Slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag by slug: %w", err)
	}
	return t, nil
}

// Create inserts a new tag and returns it with the generated ID.
func (s *TagStore) Create(name, slug string) (*models.Tag, error) {
	t := &models.Tag{}
	err := s.db.QueryRow(
		`INSERT INTO tags (name, slug) VALUES ($1, $2) RETURNING id, name, slug`,
		name, slug,
	).Scan(&t.ID, &t.Name, &t.Slug)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return t, nil
}

// Update modifies a tag's name and slug. Returns nil if not found.
func (s *TagStore) Update(id uuid.UUID, name, slug string) (*models.Tag, error) {
	t := &models.Tag{}
	err := s.db.QueryRow(
		`UPDATE tags SET name = $1, slug = $2 WHERE id = $3 RETURNING id, name, slug`,
		name, slug, id,
	).Scan(&t.ID, &t.Name, &t.Slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return t, nil
}

// Delete removes a tag by ID. Join rows cascade.
func (s *TagStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete tag: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ForPost returns all tags linked to the given post.
func (s *TagStore) ForPost(postID uuid.UUID) ([]models.Tag, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.slug
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.name ASC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("tags for post: %w", err)
	}
	defer rows.Close()

	var items []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// UnlinkAll removes every tag link for the given post.
func (s *TagStore) UnlinkAll(postID uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM post_tags WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("unlink tags: %w", err)
	}
	return nil
}

// Link attaches a tag to a post. Linking an already linked pair is a no-op
// (the join table's primary key enforces pair uniqueness).
func (s *TagStore) Link(postID, tagID uuid.UUID) error {
	_, err := s.db.Exec(
		`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		postID, tagID,
	)
	if err != nil {
		return fmt.Errorf("link tag: %w", err)
	}
	return nil
}
