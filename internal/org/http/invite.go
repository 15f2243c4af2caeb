package http

import (
	"encoding/json"
	"net/http"

	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

type InviteHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Create Invitations
//	@Description	Mint invitation tokens for a batch of email addresses and send each an accept link. Platform invites require the system admin role; organization invites also accept organization admins.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		quorumsdk.InviteRequest		true	"Invite request"
//	@Success		200		{object}	quorumsdk.InviteResponse	"invited, expires_at"
//	@Failure		400		{object}	quorumsdk.ErrorResponse		"validation_error, invalid_role"
//	@Failure		403		{object}	quorumsdk.ErrorResponse		"forbidden"
//	@Failure		429		{object}	quorumsdk.ErrorResponse		"rate_limited"
//	@Security		BearerAuth
//	@Router			/v1/invite [post].
func (h *InviteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req quorumsdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid JSON body")
		return
	}
	if len(req.Emails) == 0 {
		writeValidationError(w, "emails is required")
		return
	}
	if req.Role == "" {
		writeValidationError(w, "role is required")
		return
	}

	invitations, err := h.InviteService.Invite(ctx,
		httpx.UserIDFromCtx(ctx), req.Emails, req.Role, req.OrganizationID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := quorumsdk.InviteResponse{Invited: make([]string, 0, len(invitations))}
	for _, inv := range invitations {
		resp.Invited = append(resp.Invited, inv.Email)
		resp.ExpiresAt = inv.ExpiresAt
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// acceptTargetPath is where a client should navigate after acceptance.
func acceptTargetPath(organizationSlug string) string {
	if organizationSlug == "" {
		return "/home"
	}
	return "/" + organizationSlug
}
