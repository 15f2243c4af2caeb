package http

import (
	"net/http"

	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

// requestSortKeys maps the client sort names onto store sort keys.
var requestSortKeys = map[string]string{
	"id":        "id",
	"email":     "email",
	"type":      "type",
	"createdAt": "created_at",
}

type RequestsHandler struct {
	RequestService *service.RequestService
}

// ServeHTTP godoc
//
//	@Summary		List Access Requests
//	@Description	Page through recorded access requests with user and organization display fields joined in. Admin only. Supports q filtering on email and sorting by id, email, type or createdAt.
//	@Tags			Requests
//	@Produce		json
//	@Param			q		query		string						false	"Email substring filter"
//	@Param			sort	query		string						false	"Sort key: id, email, type, createdAt"
//	@Param			order	query		string						false	"asc or desc"
//	@Param			limit	query		int							false	"Page size (default 50, max 200)"
//	@Param			offset	query		int							false	"Page offset"
//	@Success		200		{object}	quorumsdk.RequestsResponse	"requests, total"
//	@Failure		401		{object}	quorumsdk.ErrorResponse		"unauthorized"
//	@Failure		403		{object}	quorumsdk.ErrorResponse		"forbidden"
//	@Security		BearerAuth
//	@Router			/v1/requests [get].
func (h *RequestsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, total, err := h.RequestService.GetRequests(ctx, parseListParams(r, requestSortKeys))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, quorumsdk.RequestsResponse{
		Requests: renderAccessRequests(requests),
		Total:    total,
	})
}
