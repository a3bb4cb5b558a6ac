package services

import "fmt"

// ValidationError marks malformed or missing caller input. Surfaced as 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError marks a non-success status from an external collaborator.
// Not retried here; surfaced as 502.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %s", e.Service, e.Message)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Message)
}

// DecodeError marks a successful upstream response whose body lacks the
// expected structure. Distinct from UpstreamError: it usually means schema
// drift rather than an outage.
type DecodeError struct {
	Service string
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %s", e.Service, e.Message)
}

// FormatError marks a generative-text response that parsed as success but
// failed strict shape validation (not JSON, wrong type, wrong length).
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

func NewFormatError(format string, args ...interface{}) *FormatError {
	return &FormatError{Message: fmt.Sprintf(format, args...)}
}

// MissingFieldError marks an internal invariant violation: a required score
// key is absent before feature-vector assembly. Always fatal to the run,
// never defaulted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required score field missing: %q", e.Field)
}
