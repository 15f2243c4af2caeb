package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/quorumhq/quorum/pkg/jwtx"
	"github.com/quorumhq/quorum/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token and injects the caller identity
// (user id, system role) into the request context. Requests without a valid
// token are rejected with 401.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, ErrUnauthorized)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("bearer token verification failed", "err", err)
				WriteError(w, ErrUnauthorized)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				WriteError(w, ErrUnauthorized)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
