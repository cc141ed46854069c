package errors

import (
	"fmt"
	"net/http"

	"github.com/ColorMeBooth/colorme-backend/logger"
)

type ErrorType string

const (
	ValidationError    ErrorType = "VALIDATION_ERROR"
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
	UpstreamError      ErrorType = "UPSTREAM_ERROR"
	NotFoundError      ErrorType = "NOT_FOUND"
	ServerError        ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error. Message is what the
// caller sees; Detail is logged server-side and never returned to the client
// for configuration, upstream, and server errors.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// GetHTTPStatus returns the HTTP status code associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError with a status derived from the error type.
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// ValidationFailed reports a request that failed input validation. The
// message is returned to the caller verbatim.
func ValidationFailed(message string, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ConfigurationFailed reports a missing server-side configuration value.
// The specific variable name goes into the log, never to the caller.
func ConfigurationFailed(message string, missingVar string) *AppError {
	logger.GetLogger().Errorw("Service misconfigured", "missing", missingVar)
	return &AppError{
		Type:       ConfigurationError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// UpstreamFailed reports a non-2xx response from the automation webhook. The
// upstream status code is propagated to the caller; the diagnostic body is
// logged by the caller, not carried here.
func UpstreamFailed(status int) *AppError {
	return &AppError{
		Type:       UpstreamError,
		Message:    fmt.Sprintf("Failed to process quotation request (%d)", status),
		HTTPStatus: status,
	}
}

// NotFound reports a missing resource.
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

// InternalServerError wraps any unexpected fault. The raw error is logged
// server-side; the caller sees only the generic message.
func InternalServerError(err error) *AppError {
	if err != nil {
		logger.GetLogger().Errorw("Internal server error", "error", err)
	}
	return &AppError{
		Type:       ServerError,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case ConfigurationError:
		return http.StatusInternalServerError
	case UpstreamError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
