package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

var organizationSortKeys = map[string]string{
	"name":      "name",
	"slug":      "slug",
	"createdAt": "created_at",
}

var memberSortKeys = map[string]string{
	"email":     "email",
	"name":      "name",
	"role":      "role",
	"createdAt": "created_at",
}

type OrganizationsHandler struct {
	OrganizationService *service.OrganizationService
	MembershipService   *service.MembershipService
}

// HandleCreate godoc
//
//	@Summary		Create Organization
//	@Description	Create an organization; the caller becomes its first admin. The slug is derived from the name when omitted.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		quorumsdk.CreateOrganizationRequest	true	"Organization"
//	@Success		201		{object}	quorumsdk.Organization
//	@Failure		400		{object}	quorumsdk.ErrorResponse	"validation_error"
//	@Security		BearerAuth
//	@Router			/v1/organizations [post].
func (h *OrganizationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req quorumsdk.CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid JSON body")
		return
	}

	org, err := h.OrganizationService.Create(ctx,
		httpx.UserIDFromCtx(ctx), req.Name, req.Slug, req.ThumbnailURL)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, renderOrganization(org))
}

// HandleList godoc
//
//	@Summary		List Organizations
//	@Description	Page through all organizations. Admin only.
//	@Tags			Organizations
//	@Produce		json
//	@Param			q		query		string	false	"Name substring filter"
//	@Param			sort	query		string	false	"Sort key: name, slug, createdAt"
//	@Param			order	query		string	false	"asc or desc"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	quorumsdk.OrganizationsResponse	"organizations, total"
//	@Failure		403		{object}	quorumsdk.ErrorResponse			"forbidden"
//	@Security		BearerAuth
//	@Router			/v1/organizations [get].
func (h *OrganizationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgs, total, err := h.OrganizationService.List(ctx, parseListParams(r, organizationSortKeys))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := quorumsdk.OrganizationsResponse{
		Organizations: make([]quorumsdk.Organization, 0, len(orgs)),
		Total:         total,
	}
	for _, o := range orgs {
		resp.Organizations = append(resp.Organizations, renderOrganization(o))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCheckSlug godoc
//
//	@Summary		Check Slug
//	@Description	Report whether a slug is still available for the given resource type. ORGANIZATION is the only slugged resource.
//	@Tags			Organizations
//	@Produce		json
//	@Param			type	path		string	true	"Resource type: ORGANIZATION"
//	@Param			slug	path		string	true	"Candidate slug"
//	@Success		200		{object}	quorumsdk.CheckSlugResponse
//	@Failure		400		{object}	quorumsdk.ErrorResponse	"validation_error"
//	@Security		BearerAuth
//	@Router			/v1/check-slug/{type}/{slug} [get].
func (h *OrganizationsHandler) HandleCheckSlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if strings.ToUpper(r.PathValue("type")) != "ORGANIZATION" {
		writeValidationError(w, "unknown resource type")
		return
	}

	available, err := h.OrganizationService.CheckSlug(ctx, r.PathValue("slug"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, quorumsdk.CheckSlugResponse{Available: available})
}

// HandleGet godoc
//
//	@Summary		Get Organization
//	@Description	Resolve an organization by id or slug. Members and system admins only.
//	@Tags			Organizations
//	@Produce		json
//	@Param			idOrSlug	path		string	true	"Organization id or slug"
//	@Success		200			{object}	quorumsdk.Organization
//	@Failure		403			{object}	quorumsdk.ErrorResponse	"forbidden"
//	@Failure		404			{object}	quorumsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/v1/organizations/{idOrSlug} [get].
func (h *OrganizationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	org, err := h.OrganizationService.Get(ctx,
		httpx.UserIDFromCtx(ctx), httpx.RoleFromCtx(ctx), r.PathValue("idOrSlug"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderOrganization(org))
}

// HandleUpdate godoc
//
//	@Summary		Update Organization
//	@Description	Mutate name, slug or thumbnail. Organization admins and system admins only.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			idOrSlug	path		string								true	"Organization id or slug"
//	@Param			request		body		quorumsdk.UpdateOrganizationRequest	true	"Fields to update"
//	@Success		200			{object}	quorumsdk.Organization
//	@Failure		403			{object}	quorumsdk.ErrorResponse	"forbidden"
//	@Failure		404			{object}	quorumsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/v1/organizations/{idOrSlug} [put].
func (h *OrganizationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req quorumsdk.UpdateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid JSON body")
		return
	}

	org, err := h.OrganizationService.Update(ctx,
		httpx.UserIDFromCtx(ctx), httpx.RoleFromCtx(ctx), r.PathValue("idOrSlug"),
		req.Name, req.Slug, req.ThumbnailURL)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderOrganization(org))
}

// HandleDelete godoc
//
//	@Summary		Delete Organization
//	@Description	Remove an organization and its memberships. System admin only.
//	@Tags			Organizations
//	@Param			idOrSlug	path	string	true	"Organization id or slug"
//	@Success		204
//	@Failure		403	{object}	quorumsdk.ErrorResponse	"forbidden"
//	@Failure		404	{object}	quorumsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/v1/organizations/{idOrSlug} [delete].
func (h *OrganizationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	org, err := h.OrganizationService.Get(ctx,
		httpx.UserIDFromCtx(ctx), httpx.RoleFromCtx(ctx), r.PathValue("idOrSlug"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	if err := h.OrganizationService.Delete(ctx, httpx.RoleFromCtx(ctx), []string{org.ID}); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMembers godoc
//
//	@Summary		List Members
//	@Description	Page through an organization's members with their membership attached. Members of the organization and system admins only.
//	@Tags			Organizations
//	@Produce		json
//	@Param			idOrSlug	path		string	true	"Organization id or slug"
//	@Param			q			query		string	false	"Email or name substring filter"
//	@Param			role		query		string	false	"Organization role filter: ADMIN or MEMBER"
//	@Param			sort		query		string	false	"Sort key: email, name, role, createdAt"
//	@Param			order		query		string	false	"asc or desc"
//	@Param			limit		query		int		false	"Page size"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{object}	quorumsdk.MembersResponse	"members, total"
//	@Failure		403			{object}	quorumsdk.ErrorResponse		"forbidden"
//	@Security		BearerAuth
//	@Router			/v1/organizations/{idOrSlug}/members [get].
func (h *OrganizationsHandler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID := httpx.UserIDFromCtx(ctx)
	actorRole := httpx.RoleFromCtx(ctx)

	org, err := h.OrganizationService.Get(ctx, actorID, actorRole, r.PathValue("idOrSlug"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	members, total, err := h.MembershipService.ListMembers(ctx, actorID, actorRole, org.ID,
		parseListParams(r, memberSortKeys), r.URL.Query().Get("role"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, quorumsdk.MembersResponse{
		Members: renderMembers(members),
		Total:   total,
	})
}
