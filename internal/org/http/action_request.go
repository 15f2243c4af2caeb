package http

import (
	"encoding/json"
	"net/http"

	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

type ActionRequestHandler struct {
	RequestService *service.RequestService
}

// ServeHTTP godoc
//
//	@Summary		Submit Access Request
//	@Description	Record an expression of interest: join an organization, join the waitlist, subscribe to the newsletter or make contact. Public endpoint; repeated submissions are all kept.
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		quorumsdk.ActionRequest			true	"Access request"
//	@Success		201		{object}	quorumsdk.ActionRequestResponse	"id, email, type, created_at"
//	@Failure		400		{object}	quorumsdk.ErrorResponse			"validation_error"
//	@Failure		429		{object}	quorumsdk.ErrorResponse			"rate_limited"
//	@Router			/v1/action-request [post].
func (h *ActionRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req quorumsdk.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid JSON body")
		return
	}
	if req.Email == "" {
		writeValidationError(w, "email is required")
		return
	}

	record, err := h.RequestService.Submit(ctx,
		req.Type, req.Email, req.UserID, req.OrganizationID, req.Message)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, quorumsdk.ActionRequestResponse{
		ID:        record.ID,
		Email:     record.Email,
		Type:      record.Type,
		CreatedAt: record.CreatedAt,
	})
}
