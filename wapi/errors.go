package wapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrFailedResult is used when a failure is built without an error
	ErrFailedResult = errors.New("request failed")
	// ErrRateLimited matches any RateLimitError
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrNotFound matches 404 API errors and NotFoundError
	ErrNotFound = errors.New("resource not found")
	// ErrUnsupported indicates an operation the read-only API cannot serve
	ErrUnsupported = errors.New("operation not supported")
)

// APIError represents a non-200, non-429 response
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Is lets errors.Is match ErrNotFound on 404 responses
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.IsNotFound()
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsClientError checks for a 4xx status
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError checks for a 5xx status
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// RateLimitError is returned for 429 responses
type RateLimitError struct {
	// ResetIn is the number of seconds until the quota resets, never negative
	ResetIn   int64
	Remaining int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("Rate limit exceeded. Reset in %d seconds", e.ResetIn)
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// NetworkError wraps transport-level faults
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a 200 response body cannot be decoded
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to parse JSON response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MappingError is produced when a Map transform fails
type MappingError struct {
	Err error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("Mapping failed: %v", e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// NotFoundError describes a missing resource of a known type
type NotFoundError struct {
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError carries one or more input violations
type ValidationError struct {
	Message    string
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s. Validation errors: %s", e.Message, strings.Join(e.Violations, ", "))
}

// Add appends a violation and returns the error for chaining
func (e *ValidationError) Add(violation string) *ValidationError {
	e.Violations = append(e.Violations, violation)
	return e
}

// HasViolations reports whether any violation was recorded
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}
