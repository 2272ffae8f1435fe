// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package workflow orchestrates the content publication lifecycle: slug
// derivation, tag and degree-level reconciliation, publish transition
// detection, and the asynchronous newsletter fan-out. Relation and
// notification failures are logged, never surfaced — only validation,
// not-found, and store failures reach the caller.
package workflow

import "errors"

// ErrNotFound is returned when the target of an update or delete does
// not exist. Handlers map it to a 404.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or malformed required field. The
// operation is not attempted. Handlers map it to a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }
