package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeNotLinked        ErrorCode = "not_linked"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeTooManyRequests  ErrorCode = "too_many_requests"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeUpstreamError ErrorCode = "upstream_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

func newError(code ErrorCode, message string, details ...string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details...)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details...)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details...)
}

func NewNotLinkedError(details ...string) *APIError {
	return newError(ErrCodeNotLinked, "Game is not linked to a catalog identity", details...)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(ErrCodeConflict, message, details...)
}

func NewTooManyRequestsError(message string, details ...string) *APIError {
	return newError(ErrCodeTooManyRequests, message, details...)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details...)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newError(ErrCodeDatabaseError, message, details...)
}

func NewUpstreamError(message string, details ...string) *APIError {
	return newError(ErrCodeUpstreamError, message, details...)
}

// FromDomain maps a domain error to its HTTP status and response body.
// ok is false for errors that have no client-facing mapping.
func FromDomain(err error) (status int, apiErr *APIError, ok bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidSource),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidCondition):
		return http.StatusBadRequest, NewValidationError(err.Error()), true
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, NewNotFoundError("Record not found", err.Error()), true
	case errors.Is(err, domain.ErrNotLinked):
		return http.StatusUnprocessableEntity, NewNotLinkedError(err.Error()), true
	case errors.Is(err, domain.ErrAlreadyLent), errors.Is(err, domain.ErrNotLent):
		return http.StatusConflict, NewConflictError(err.Error()), true
	case errors.Is(err, domain.ErrFetch):
		return http.StatusBadGateway, NewUpstreamError("Catalog request failed", err.Error()), true
	case errors.Is(err, domain.ErrReconciliation), errors.Is(err, domain.ErrWrite):
		return http.StatusInternalServerError, NewDatabaseError("Failed to store the record"), true
	}
	return 0, nil, false
}
