package quorumsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stable error discriminators, mirroring the server's API contract.
const (
	ErrorCodeForbidden       = "forbidden"
	ErrorCodeUnauthorized    = "unauthorized"
	ErrorCodeInvalidRole     = "invalid_role"
	ErrorCodeTokenInvalid    = "token_invalid"
	ErrorCodeTokenExpired    = "token_expired"
	ErrorCodeTokenConsumed   = "token_consumed"
	ErrorCodeRateLimited     = "rate_limited"
	ErrorCodeValidationError = "validation_error"
	ErrorCodeNotFound        = "not_found"
	ErrorCodeServerError     = "server_error"
)

// APIError is a typed error parsed from a service error response.
type APIError struct {
	// StatusCode is the HTTP status the server answered with.
	StatusCode int

	// Code is the stable discriminator (one of the ErrorCode constants).
	Code string

	// Message is the human-readable description from the server.
	Message string

	// RetryAfter is the number of seconds to wait when Code is
	// rate_limited. Zero otherwise.
	RetryAfter int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsTokenError reports whether the error is any of the invitation token
// failures (invalid, expired, consumed).
func (e *APIError) IsTokenError() bool {
	switch e.Code {
	case ErrorCodeTokenInvalid, ErrorCodeTokenExpired, ErrorCodeTokenConsumed:
		return true
	}
	return false
}

// parseErrorResponse turns a non-2xx response body into a typed *APIError.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Message:    errResp.Message,
			RetryAfter: errResp.RetryAfter,
		}
	}

	// Fallback: generic error from the status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
