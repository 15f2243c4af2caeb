package http

import (
	"encoding/json"
	"net/http"

	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

type AcceptInviteHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation
//	@Description	Redeem an invitation token. Creates the user account (with argon2id password) when the invited email is new, otherwise attaches the membership to the existing account. Each token is redeemable exactly once.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string							true	"Invitation token"
//	@Param			request	body		quorumsdk.AcceptInviteRequest	false	"Credentials for new accounts"
//	@Success		200		{object}	quorumsdk.AcceptInviteResponse	"user, target_path"
//	@Failure		400		{object}	quorumsdk.ErrorResponse			"token_invalid"
//	@Failure		409		{object}	quorumsdk.ErrorResponse			"token_consumed"
//	@Failure		410		{object}	quorumsdk.ErrorResponse			"token_expired"
//	@Failure		429		{object}	quorumsdk.ErrorResponse			"rate_limited"
//	@Router			/v1/accept-invite/{token} [post].
func (h *AcceptInviteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The body is optional; existing users redeem with an empty one.
	var req quorumsdk.AcceptInviteRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeValidationError(w, "invalid JSON body")
			return
		}
	}

	result, err := h.InviteService.AcceptInvite(ctx, r.PathValue("token"), req.Name, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, quorumsdk.AcceptInviteResponse{
		User:       renderUser(result.User),
		TargetPath: acceptTargetPath(result.OrganizationSlug),
	})
}
