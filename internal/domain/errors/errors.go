package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails or WithMessage still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, typically with the one the
// remote API returned.
func (e *BaseError) WithMessage(message string) *BaseError {
	if message == "" {
		return e
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Session errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please log in to continue",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Login failed",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusBadRequest,
		"REGISTRATION_FAILED",
		"Registration failed",
		"",
	)

	ErrPasswordResetFailed = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_RESET_FAILED",
		"Invalid Request",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Session token could not be read",
		"",
	)

	// Cart and order errors
	ErrEmptyCart = NewBaseError(
		http.StatusConflict,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	ErrOrderFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_FAILED",
		"Order failed",
		"",
	)

	ErrCheckoutFailed = NewBaseError(
		http.StatusBadGateway,
		"CHECKOUT_FAILED",
		"Failed to create checkout session",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please fill in all required fields",
		"",
	)

	// Upstream errors
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"Something went wrong",
		"",
	)

	ErrUpstreamRejected = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_REJECTED",
		"The request was rejected",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)
)

// UpstreamKind classifies how a remote call failed.
type UpstreamKind string

const (
	// UpstreamTransport means the request never completed.
	UpstreamTransport UpstreamKind = "transport"
	// UpstreamHTTP means a non-2xx status came back.
	UpstreamHTTP UpstreamKind = "http"
	// UpstreamBusiness means a 2xx came back but the payload said no.
	UpstreamBusiness UpstreamKind = "business"
)

// UpstreamError is the single shape every remote failure is normalised into.
type UpstreamError struct {
	Kind       UpstreamKind
	Endpoint   string
	StatusCode int
	Msg        string
	Err        error
}

// NewUpstreamError creates an upstream error
func NewUpstreamError(kind UpstreamKind, endpoint string, statusCode int, msg string, err error) *UpstreamError {
	return &UpstreamError{
		Kind:       kind,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Msg:        msg,
		Err:        err,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	switch e.Kind {
	case UpstreamTransport:
		return fmt.Sprintf("%s: transport failure: %v", e.Endpoint, e.Err)
	case UpstreamHTTP:
		return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Msg)
	default:
		return fmt.Sprintf("%s: rejected: %s", e.Endpoint, e.Msg)
	}
}

// Unwrap returns the transport error, if any
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPCode maps upstream auth failures to 401 and everything else to 502.
func (e *UpstreamError) HTTPCode() int {
	if e.StatusCode == http.StatusUnauthorized {
		return http.StatusUnauthorized
	}
	if e.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	if e.Kind == UpstreamTransport {
		return ErrUpstreamUnavailable.ErrorCode()
	}

	return ErrUpstreamRejected.ErrorCode()
}

// Message returns the server message, or a generic one when there is none
func (e *UpstreamError) Message() string {
	if e.Msg != "" && e.Kind != UpstreamTransport {
		return e.Msg
	}

	return ErrUpstreamUnavailable.Message()
}

// Details returns the failing endpoint
func (e *UpstreamError) Details() string {
	return e.Endpoint
}

// UserMessage collapses any error into the one string a view would display,
// falling back to fallback when nothing more specific is known.
func UserMessage(err error, fallback string) string {
	var appErr AppError
	if errors.As(err, &appErr) && appErr.Message() != "" {
		return appErr.Message()
	}

	return fallback
}

// IsUpstreamKind reports whether err is an UpstreamError of the given kind.
func IsUpstreamKind(err error, kind UpstreamKind) bool {
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		return false
	}

	return upErr.Kind == kind
}
