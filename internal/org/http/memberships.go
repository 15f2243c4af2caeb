package http

import (
	"encoding/json"
	"net/http"

	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

type MembershipsHandler struct {
	MembershipService *service.MembershipService
}

// HandleMenu godoc
//
//	@Summary		Navigation Menu
//	@Description	Return every organization the caller belongs to with the membership attached, for the client navigation menu.
//	@Tags			Memberships
//	@Produce		json
//	@Success		200	{object}	quorumsdk.MenuResponse	"organizations"
//	@Failure		401	{object}	quorumsdk.ErrorResponse	"unauthorized"
//	@Security		BearerAuth
//	@Router			/v1/menu [get].
func (h *MembershipsHandler) HandleMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgs, err := h.MembershipService.Menu(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, quorumsdk.MenuResponse{
		Organizations: renderMenu(orgs),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update Membership
//	@Description	Apply a partial membership update. Role changes require an organization admin; inactive and muted may also be toggled by the member themselves.
//	@Tags			Memberships
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Membership id"
//	@Param			request	body		quorumsdk.UpdateMembershipRequest	true	"Fields to update"
//	@Success		200		{object}	quorumsdk.Membership
//	@Failure		403		{object}	quorumsdk.ErrorResponse	"forbidden"
//	@Failure		404		{object}	quorumsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/v1/memberships/{id} [put].
func (h *MembershipsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req quorumsdk.UpdateMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid JSON body")
		return
	}

	membership, err := h.MembershipService.Update(ctx,
		httpx.UserIDFromCtx(ctx), httpx.RoleFromCtx(ctx), r.PathValue("id"),
		req.Role, req.Inactive, req.Muted)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderMembership(membership))
}

// HandleDelete godoc
//
//	@Summary		Remove Members
//	@Description	Bulk-remove users from an organization. Organization admins and system admins only.
//	@Tags			Memberships
//	@Accept			json
//	@Param			request	body	quorumsdk.DeleteMembershipsRequest	true	"Organization and users"
//	@Success		204
//	@Failure		403	{object}	quorumsdk.ErrorResponse	"forbidden"
//	@Security		BearerAuth
//	@Router			/v1/memberships [delete].
func (h *MembershipsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req quorumsdk.DeleteMembershipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid JSON body")
		return
	}
	if req.OrganizationID == "" || len(req.UserIDs) == 0 {
		writeValidationError(w, "organization_id and user_ids are required")
		return
	}

	if err := h.MembershipService.Remove(ctx,
		httpx.UserIDFromCtx(ctx), httpx.RoleFromCtx(ctx),
		req.OrganizationID, req.UserIDs); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
