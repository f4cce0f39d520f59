// Package apperr defines the error taxonomy shared by the store and route
// layers. Handlers map these types to HTTP statuses; anything outside the
// taxonomy is treated as an unexpected upstream failure.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError is returned for malformed or out-of-range input. It is
// raised before any mutation reaches storage.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError is returned when an id- or name-based lookup misses.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// ConflictError is returned for duplicate unique keys and for deleting a
// category that is still referenced.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// AuthError is returned for missing, invalid or expired credentials.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

// UpstreamError wraps a failure from an external collaborator such as the
// image host.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func NewNotFound(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

func NewConflict(reason string) error {
	return &ConflictError{Reason: reason}
}

func NewAuth(reason string) error {
	return &AuthError{Reason: reason}
}

func NewUpstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// errors.As helpers for the route boundary.

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

func IsUpstream(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}
