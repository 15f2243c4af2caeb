package http

import (
	"encoding/json"
	"net/http"

	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

var userSortKeys = map[string]string{
	"email":      "email",
	"name":       "name",
	"role":       "role",
	"createdAt":  "created_at",
	"modifiedAt": "modified_at",
}

type UsersHandler struct {
	UserService *service.UserService
}

// HandleMe godoc
//
//	@Summary		Current User
//	@Description	Return the authenticated user's profile.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	quorumsdk.User
//	@Failure		401	{object}	quorumsdk.ErrorResponse	"unauthorized"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID := httpx.UserIDFromCtx(ctx)

	user, err := h.UserService.Get(ctx, actorID, httpx.RoleFromCtx(ctx), actorID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderUser(user))
}

// HandleList godoc
//
//	@Summary		List Users
//	@Description	Page through platform users. Admin only. Supports q filtering on email and name, and a role filter.
//	@Tags			Users
//	@Produce		json
//	@Param			q		query		string	false	"Email or name substring filter"
//	@Param			role	query		string	false	"System role filter: ADMIN or USER"
//	@Param			sort	query		string	false	"Sort key: email, name, role, createdAt, modifiedAt"
//	@Param			order	query		string	false	"asc or desc"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	quorumsdk.UsersResponse	"users, total"
//	@Failure		403		{object}	quorumsdk.ErrorResponse	"forbidden"
//	@Security		BearerAuth
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, total, err := h.UserService.List(ctx,
		parseListParams(r, userSortKeys), r.URL.Query().Get("role"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, quorumsdk.UsersResponse{
		Users: renderUsers(users),
		Total: total,
	})
}

// HandleGet godoc
//
//	@Summary		Get User
//	@Description	Fetch one user by id. Admins can fetch anyone; users can fetch themselves.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	quorumsdk.User
//	@Failure		403	{object}	quorumsdk.ErrorResponse	"forbidden"
//	@Failure		404	{object}	quorumsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.UserService.Get(ctx,
		httpx.UserIDFromCtx(ctx), httpx.RoleFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderUser(user))
}

// HandleUpdate godoc
//
//	@Summary		Update User
//	@Description	Mutate a user's display name and thumbnail. Admin or self.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User id"
//	@Param			request	body		quorumsdk.UpdateUserRequest	true	"Fields to update"
//	@Success		200		{object}	quorumsdk.User
//	@Failure		403		{object}	quorumsdk.ErrorResponse	"forbidden"
//	@Failure		404		{object}	quorumsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req quorumsdk.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid JSON body")
		return
	}

	user, err := h.UserService.Update(ctx,
		httpx.UserIDFromCtx(ctx), httpx.RoleFromCtx(ctx), r.PathValue("id"),
		req.Name, req.ThumbnailURL)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderUser(user))
}

// HandleDelete godoc
//
//	@Summary		Delete User
//	@Description	Remove a user account; their memberships cascade. Admin or self.
//	@Tags			Users
//	@Param			id	path	string	true	"User id"
//	@Success		204
//	@Failure		403	{object}	quorumsdk.ErrorResponse	"forbidden"
//	@Failure		404	{object}	quorumsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.UserService.Delete(ctx,
		httpx.UserIDFromCtx(ctx), httpx.RoleFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
