package httpx

import "net/http"

// RequireRole rejects requests whose authenticated caller does not hold one
// of the listed system roles. Must run after AuthnMiddleware.
func RequireRole(roles ...string) Middleware {
	want := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[RoleFromCtx(r.Context())]; !ok {
				WriteError(w, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
