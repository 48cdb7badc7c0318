package services

import (
	"errors"
	"fmt"

	"onboard_panel/model"
)

// ErrNotFound is the sentinel wrapped by every not-found failure so callers
// can branch with errors.Is regardless of which entity was missing.
var ErrNotFound = errors.New("not found")

// ValidationError reports missing or malformed required input. It is raised
// before any store write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NotFoundError reports that a referenced id did not resolve.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidTransitionError reports a lifecycle operation attempted from a
// state that does not permit it. The record is left untouched.
type InvalidTransitionError struct {
	From model.Status
	Op   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a record with status %q", e.Op, e.From)
}

// BackendError wraps an opaque failure from the document store, blob store
// or auth backend. Handlers surface its message but never the raw cause.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: backend failure: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func backendErr(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}
