package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/slogx"
)

// writeServiceError maps service sentinel errors onto the typed JSON error
// contract. Unknown errors are logged and answered as 500 so internals never
// leak to clients.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, httpx.ErrForbidden)
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, httpx.ErrNotFound)
	case errors.Is(err, service.ErrInvalidRole):
		httpx.WriteError(w, httpx.NewAPIError(http.StatusBadRequest,
			httpx.ErrorTypeInvalidRole, "role is not in the allowed set"))
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidRequestType),
		errors.Is(err, service.ErrSlugTaken):
		httpx.WriteError(w, httpx.NewAPIError(http.StatusBadRequest,
			httpx.ErrorTypeValidationError, err.Error()))
	case errors.Is(err, service.ErrTokenInvalid):
		httpx.WriteError(w, httpx.NewAPIError(http.StatusBadRequest,
			httpx.ErrorTypeTokenInvalid, "invitation token is invalid"))
	case errors.Is(err, service.ErrTokenExpired):
		httpx.WriteError(w, httpx.NewAPIError(http.StatusGone,
			httpx.ErrorTypeTokenExpired, "invitation token has expired"))
	case errors.Is(err, service.ErrTokenConsumed):
		httpx.WriteError(w, httpx.NewAPIError(http.StatusConflict,
			httpx.ErrorTypeTokenConsumed, "invitation token has already been used"))
	default:
		slogx.FromContext(ctx).Error("unhandled service error", "err", err)
		httpx.WriteError(w, httpx.ErrServerError)
	}
}

// writeValidationError answers 400 with the validation_error discriminator.
func writeValidationError(w http.ResponseWriter, message string) {
	httpx.WriteError(w, httpx.NewAPIError(http.StatusBadRequest,
		httpx.ErrorTypeValidationError, message))
}
