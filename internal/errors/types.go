package errors

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "server_error")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeServerError = "server_error"
)
