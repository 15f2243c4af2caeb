package http

import (
	"net/http"
	"strconv"

	"github.com/quorumhq/quorum/internal/org/store"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// parseListParams reads the shared q/sort/order/limit/offset query
// parameters. sortKeys maps API sort names (camelCase as the clients send
// them) to store sort keys; unknown names fall back to the store default.
func parseListParams(r *http.Request, sortKeys map[string]string) store.ListParams {
	q := r.URL.Query()

	p := store.ListParams{
		Q:     q.Get("q"),
		Limit: defaultLimit,
	}

	if sort, ok := sortKeys[q.Get("sort")]; ok {
		p.Sort = sort
	}
	if q.Get("order") == "desc" {
		p.Order = "desc"
	} else {
		p.Order = "asc"
	}

	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		p.Limit = min(v, maxLimit)
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		p.Offset = v
	}

	return p
}
