// Package response writes the storefront's JSON envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success  bool       `json:"success"`
	Code     int        `json:"code"`    // HTTP status code
	Message  string     `json:"message"` // User-facing message
	Data     any        `json:"data,omitempty"`
	Redirect string     `json:"redirect,omitempty"` // Where the view should navigate next
	Error    *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"` // Business error code, e.g., "EMPTY_CART"
	Details string `json:"details,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Navigate is a successful response that tells the view where to go.
func Navigate(c echo.Context, data any, message, redirect string) error {
	return c.JSON(http.StatusOK, Response{
		Success:  true,
		Code:     http.StatusOK,
		Message:  message,
		Data:     data,
		Redirect: redirect,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized is a 401 that sends the view to the login page.
func Unauthorized(c echo.Context, errorCode, message, redirect string) error {
	return c.JSON(http.StatusUnauthorized, Response{
		Success:  false,
		Code:     http.StatusUnauthorized,
		Message:  message,
		Redirect: redirect,
		Error:    &ErrorInfo{Code: errorCode},
	})
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}
