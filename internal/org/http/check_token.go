package http

import (
	"net/http"

	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

type CheckTokenHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Check Invitation Token
//	@Description	Validate an invitation token and return its metadata (invited email, role, organization) without consuming it. Safe to call any number of times.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string							true	"Invitation token"
//	@Success		200		{object}	quorumsdk.CheckTokenResponse	"email, role, organization"
//	@Failure		400		{object}	quorumsdk.ErrorResponse			"token_invalid"
//	@Failure		409		{object}	quorumsdk.ErrorResponse			"token_consumed"
//	@Failure		410		{object}	quorumsdk.ErrorResponse			"token_expired"
//	@Router			/v1/check-token/{token} [get].
func (h *CheckTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	details, err := h.InviteService.CheckToken(ctx, r.PathValue("token"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, quorumsdk.CheckTokenResponse{
		Email:            details.Email,
		Role:             details.Role,
		OrganizationName: details.OrganizationName,
		OrganizationSlug: details.OrganizationSlug,
		ExpiresAt:        details.ExpiresAt,
	})
}
