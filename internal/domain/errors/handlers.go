package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "EMPTY_CART"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response mirrors the delivery envelope so the error handler can emit it
// without importing the delivery layer.
type Response struct {
	Success  bool       `json:"success"`
	Code     int        `json:"code"`
	Message  string     `json:"message"`
	Redirect string     `json:"redirect,omitempty"`
	Error    *ErrorInfo `json:"error,omitempty"`
}
