package httpx

import (
	"fmt"
	"net/http"
	"strconv"
)

// Stable error discriminators. Clients map these to localized messages, so
// they are part of the API contract and must not change meaning.
const (
	ErrorTypeForbidden       = "forbidden"
	ErrorTypeUnauthorized    = "unauthorized"
	ErrorTypeInvalidRole     = "invalid_role"
	ErrorTypeTokenInvalid    = "token_invalid"
	ErrorTypeTokenExpired    = "token_expired"
	ErrorTypeTokenConsumed   = "token_consumed"
	ErrorTypeRateLimited     = "rate_limited"
	ErrorTypeValidationError = "validation_error"
	ErrorTypeNotFound        = "not_found"
	ErrorTypeServerError     = "server_error"
)

// APIError is the typed JSON error body every endpoint returns on failure.
// It implements error so the SDK can surface it directly.
type APIError struct {
	// Status is the HTTP status code. Not serialized; the transport
	// carries it.
	Status int `json:"-"`

	// Type is the stable discriminator from the ErrorType constants.
	Type string `json:"error"`

	// Message is a human-readable description. Informational only;
	// clients should branch on Type.
	Message string `json:"message"`

	// RetryAfter is the number of seconds until a rate-limited action may
	// be retried. Only set when Type is rate_limited.
	RetryAfter int `json:"retry_after,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// WriteError writes e as the JSON response, including a Retry-After header
// for rate-limited failures.
func WriteError(w http.ResponseWriter, e *APIError) {
	if e.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(e.RetryAfter))
	}
	WriteJSON(w, e.Status, e)
}

// NewAPIError builds an APIError with the given status, type and message.
func NewAPIError(status int, errType, message string) *APIError {
	return &APIError{Status: status, Type: errType, Message: message}
}

var (
	ErrForbidden = &APIError{
		Status:  http.StatusForbidden,
		Type:    ErrorTypeForbidden,
		Message: "you do not have permission to perform this action",
	}

	ErrUnauthorized = &APIError{
		Status:  http.StatusUnauthorized,
		Type:    ErrorTypeUnauthorized,
		Message: "authentication required",
	}

	ErrServerError = &APIError{
		Status:  http.StatusInternalServerError,
		Type:    ErrorTypeServerError,
		Message: "internal server error",
	}

	ErrNotFound = &APIError{
		Status:  http.StatusNotFound,
		Type:    ErrorTypeNotFound,
		Message: "resource not found",
	}
)
