// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/mail"
	"strings"

	"scholargate/internal/store"
)

// Newsletter groups the subscriber lifecycle handlers.
type Newsletter struct {
	subscribers *store.SubscriberStore
}

// NewNewsletter creates the newsletter handler group.
func NewNewsletter(subscribers *store.SubscriberStore) *Newsletter {
	return &Newsletter{subscribers: subscribers}
}

type subscribePayload struct {
	Email string `json:"email"`
}

// validEmail does a syntactic check only. Deliverability is the SMTP
// transport's problem.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// Subscribe handles POST /api/newsletter/subscribe. Re-subscribing an
// inactive address reactivates it; subscribing an active one is a no-op
// success.
func (h *Newsletter) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in subscribePayload
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}

	email := strings.TrimSpace(in.Email)
	if email == "" || !validEmail(email) {
		respondBadRequest(w, "a valid email address is required")
		return
	}

	sub, err := h.subscribers.Subscribe(email)
	if err != nil {
		respondError(w, "subscribe", err)
		return
	}
	respondData(w, http.StatusOK, sub)
}

// Unsubscribe handles POST /api/newsletter/unsubscribe. Unknown
// addresses get a 404; repeating an unsubscribe is idempotent and keeps
// the original unsubscribed_at timestamp.
func (h *Newsletter) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var in subscribePayload
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		respondBadRequest(w, "email is required")
		return
	}

	sub, err := h.subscribers.Unsubscribe(email)
	if err != nil {
		respondError(w, "unsubscribe", err)
		return
	}
	if sub == nil {
		respondNotFound(w)
		return
	}
	respondMessage(w, http.StatusOK, "unsubscribed")
}
