// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"scholargate/internal/models"
)

// SubscriberStore handles the newsletter subscriber lifecycle. Emails are
// normalized to lowercase before every lookup or write so the unique
// constraint treats addresses case-insensitively.
type SubscriberStore struct {
	db *sql.DB
}

// NewSubscriberStore creates a new SubscriberStore.
func NewSubscriberStore(db *sql.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

// Subscribe creates a subscriber for the given email, or reactivates an
// existing row that previously unsubscribed. Subscribing an already
// active email is a no-op that returns the existing row.
func (s *SubscriberStore) Subscribe(email string) (*models.Subscriber, error) {
	email = normalizeEmail(email)

	sub := &models.Subscriber{}
	err := s.db.QueryRow(`
		INSERT INTO newsletter_subscribers (email) VALUES ($1)
		ON CONFLICT (email) DO UPDATE
			SET is_active = TRUE, unsubscribed_at = NULL
		RETURNING id, email, is_active, subscribed_at, unsubscribed_at`,
		email,
	).Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", email, err)
	}
	return sub, nil
}

// Unsubscribe soft-deletes a subscriber: the row stays but is_active goes
// false and unsubscribed_at is stamped. Unsubscribing twice is idempotent.
// Returns nil if the email was never subscribed.
func (s *SubscriberStore) Unsubscribe(email string) (*models.Subscriber, error) {
	email = normalizeEmail(email)

	sub := &models.Subscriber{}
	err := s.db.QueryRow(`
		UPDATE newsletter_subscribers
		SET is_active = FALSE,
		    unsubscribed_at = COALESCE(unsubscribed_at, NOW())
		WHERE email = $1
		RETURNING id, email, is_active, subscribed_at, unsubscribed_at`,
		email,
	).Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unsubscribe %s: %w", email, err)
	}
	return sub, nil
}

// FindByEmail retrieves a subscriber by email. Returns nil if not found.
func (s *SubscriberStore) FindByEmail(email string) (*models.Subscriber, error) {
	email = normalizeEmail(email)

	sub := &models.Subscriber{}
	err := s.db.QueryRow(`
		SELECT id, email, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers WHERE email = $1`,
		email,
	).Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	return sub, nil
}

// ListActiveEmails returns the email addresses of all active subscribers.
// Read fresh at dispatch time so late subscribers are included.
func (s *SubscriberStore) ListActiveEmails() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT email FROM newsletter_subscribers WHERE is_active = TRUE ORDER BY subscribed_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list active subscribers: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan subscriber email: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
