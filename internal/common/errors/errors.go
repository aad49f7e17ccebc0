// Package errors provides standardized error handling for the HTTP API and
// the outbound integrations behind it.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfigMissing       ErrorCode = "CONFIG_MISSING"
	ErrCodeEmailProviderFailed ErrorCode = "EMAIL_PROVIDER_FAILED"
	ErrCodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	ErrCodeResourceNotFound    ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeStorageFailed       ErrorCode = "STORAGE_FAILED"
	ErrCodeAssistantFailed     ErrorCode = "ASSISTANT_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps an error code to the response status the API surfaces.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeResourceNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// Error Constructors
// ==========================

// NewConfigMissingError creates a non-retryable configuration error. The
// provider is never contacted when this is returned.
func NewConfigMissingError(integration string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigMissing,
		Message:   fmt.Sprintf("%s service not configured", integration),
		Details:   fmt.Sprintf("integration: %s, credential missing", integration),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailProviderError creates a retryable provider error. Details stay
// server-side; the client only ever sees Message.
func NewEmailProviderError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailProviderFailed,
		Message:   "Failed to send email",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewResourceNotFoundError creates a non-retryable not-found error.
func NewResourceNotFoundError(resource, id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResourceNotFound,
		Message:   fmt.Sprintf("%s not found", resource),
		Details:   fmt.Sprintf("id: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageError creates a retryable storage error.
func NewStorageError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageFailed,
		Message:   "Message store operation failed",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAssistantError creates a retryable assistant provider error.
func NewAssistantError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAssistantFailed,
		Message:   "Assistant request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
