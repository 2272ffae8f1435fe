// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON HTTP handlers for the ScholarGate
// backend. Handlers are grouped by concern (posts, jobs, taxonomy,
// newsletter, upload) and receive their dependencies through the
// handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"scholargate/internal/workflow"
)

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondData writes a success envelope carrying data.
func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// respondMessage writes a success envelope with only a message.
func respondMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: true, Message: msg})
}

// respondError maps an error to the status taxonomy: validation errors
// are 400, missing targets 404, everything else a logged 500. Store
// failure details never leak to the client.
func respondError(w http.ResponseWriter, op string, err error) {
	var verr *workflow.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: verr.Msg})
	case errors.Is(err, workflow.ErrNotFound):
		writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "not found"})
	default:
		slog.Error(op+" failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Message: "internal server error"})
	}
}

// respondBadRequest writes a 400 with a caller-facing message.
func respondBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: msg})
}

// respondNotFound writes a 404.
func respondNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "not found"})
}

// decodeBody decodes a JSON request body into dst. Returns a
// caller-facing error message on malformed input, empty string on
// success.
func decodeBody(r *http.Request, dst any) string {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return "invalid JSON body"
	}
	return ""
}
