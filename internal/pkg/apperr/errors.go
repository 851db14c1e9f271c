package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError signals that a referenced resource does not exist.
// Surfaced to the caller immediately, no retry.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

func NotFound(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

// ValidationError carries the specific missing or invalid fields so the
// caller can re-ask for exactly those.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func Validation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func ValidationField(field, reason string) error {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// ConflictError signals that an otherwise valid request lost a race,
// e.g. a slot that was free at read time is booked at commit time.
// Distinct from ValidationError so callers can re-offer slot selection
// instead of re-asking for customer details.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// UpstreamError wraps failures of external collaborators (embedding,
// vector search, text generation, mail). Retryable from the caller's
// point of view.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func Upstream(service string, err error) error {
	return &UpstreamError{Service: service, Err: err}
}

// ParseError signals that an upstream returned something structurally
// invalid where strict output was required (e.g. non-JSON from the
// generation service). Distinct from UpstreamError: the call succeeded
// but the prompt/response contract was violated.
type ParseError struct {
	What string
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func Parse(what, raw string, err error) error {
	return &ParseError{What: what, Raw: raw, Err: err}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}
