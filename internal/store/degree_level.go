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

// DegreeLevelStore handles degree levels and the post_degree_levels join
// table. Degree levels are seeded lookup data — the content workflow only
// references them by ID, never creates them.
type DegreeLevelStore struct {
	db *sql.DB
}

// NewDegreeLevelStore creates a new DegreeLevelStore.
func NewDegreeLevelStore(db *sql.DB) *DegreeLevelStore {
	return &DegreeLevelStore{db: db}
}

// List returns all degree levels ordered by name.
func (s *DegreeLevelStore) List() ([]models.DegreeLevel, error) {
	rows, err := s.db.Query(`SELECT id, name, slug, description FROM degree_levels ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list degree levels: %w", err)
	}
	defer rows.Close()
	return collectDegreeLevels(rows)
}

// Create inserts a new degree level.
func (s *DegreeLevelStore) Create(name, slug string, description *string) (*models.DegreeLevel, error) {
	dl := &models.DegreeLevel{}
	err := s.db.QueryRow(
		`INSERT INTO degree_levels (name, slug, description) VALUES ($1, $2, $3)
		 RETURNING id, name, slug, description`,
		name, slug, description,
	).Scan(&dl.ID, &dl.Name, &dl.Slug, &dl.Description)
	if err != nil {
		return nil, fmt.Errorf("create degree level: %w", err)
	}
	return dl, nil
}

// Update modifies a degree level. Returns nil if not found.
func (s *DegreeLevelStore) Update(id uuid.UUID, name, slug string, description *string) (*models.DegreeLevel, error) {
	dl := &models.DegreeLevel{}
	err := s.db.QueryRow(
		`UPDATE degree_levels SET name = $1, slug = $2, description = $3 WHERE id = $4
		 RETURNING id, name, slug, description`,
		name, slug, description, id,
	).Scan(&dl.ID, &dl.Name, &dl.Slug, &dl.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update degree level: %w", err)
	}
	return dl, nil
}

// Delete removes a degree level by ID.
func (s *DegreeLevelStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM degree_levels WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete degree level: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ForPost returns all degree levels linked to the given post.
func (s *DegreeLevelStore) ForPost(postID uuid.UUID) ([]models.DegreeLevel, error) {
	rows, err := s.db.Query(`
		SELECT dl.id, dl.name, dl.slug, dl.description
		FROM degree_levels dl
		JOIN post_degree_levels pdl ON pdl.degree_level_id = dl.id
		WHERE pdl.post_id = $1
		ORDER BY dl.name ASC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("degree levels for post: %w", err)
	}
	defer rows.Close()
	return collectDegreeLevels(rows)
}

// UnlinkAll removes every degree-level link for the given post.
func (s *DegreeLevelStore) UnlinkAll(postID uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM post_degree_levels WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("unlink degree levels: %w", err)
	}
	return nil
}

// LinkMany bulk-attaches degree levels to a post. Duplicate pairs are
// ignored via the join table's primary key.
func (s *DegreeLevelStore) LinkMany(postID uuid.UUID, degreeLevelIDs []uuid.UUID) error {
	for _, dlID := range degreeLevelIDs {
		_, err := s.db.Exec(
			`INSERT INTO post_degree_levels (post_id, degree_level_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			postID, dlID,
		)
		if err != nil {
			return fmt.Errorf("link degree level %s: %w", dlID, err)
		}
	}
	return nil
}

func collectDegreeLevels(rows *sql.Rows) ([]models.DegreeLevel, error) {
	var items []models.DegreeLevel
	for rows.Next() {
		var dl models.DegreeLevel
		if err := rows.Scan(&dl.ID, &dl.Name, &dl.Slug, &dl.Description); err != nil {
			return nil, fmt.Errorf("scan degree level: %w", err)
		}
		items = append(items, dl)
	}
	return items, rows.Err()
}
