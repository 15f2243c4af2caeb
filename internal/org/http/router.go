// Package http wires the REST surface: routing, authentication, rate
// limiting and the JSON rendering of domain types.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/internal/org/store"
	"github.com/quorumhq/quorum/pkg/httpx"
	"github.com/quorumhq/quorum/pkg/jwtx"
	"github.com/quorumhq/quorum/pkg/slogx"

	_ "github.com/quorumhq/quorum/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	InviteService       *service.InviteService
	RequestService      *service.RequestService
	UserService         *service.UserService
	OrganizationService *service.OrganizationService
	MembershipService   *service.MembershipService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerRequests()
	r.registerUsers()
	r.registerOrganizations()
	r.registerMemberships()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Quorum Organization Service API
//	@version		0.1.0
//	@description	Multi-tenant organization and membership service. The core surface is the
//	@description	invitation lifecycle: admins mint signed, time-bounded invitation tokens,
//	@description	invitees check and accept them, and unauthenticated visitors can record
//	@description	access requests for downstream triage.
//
//	@contact.name				Quorum Team
//	@contact.url				https://github.com/quorumhq/quorum
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvites() {
	checkHandler := &CheckTokenHandler{InviteService: r.InviteService}
	inviteHandler := &InviteHandler{InviteService: r.InviteService}
	acceptHandler := &AcceptInviteHandler{InviteService: r.InviteService}

	// GET /check-token/{token} - public, read-only, no budget
	r.Mux.Handle("GET /v1/check-token/{token}",
		httpx.Chain(checkHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST /invite - success budget: 10 sent invitations per hour per
	// admin, then a 10 minute block. Failed attempts do not spend.
	inviteBudget := httpx.NewBudgetLimiter(httpx.Budget{
		Points: 10,
		Window: time.Hour,
		Block:  10 * time.Minute,
	}, httpx.ModeSuccess)
	r.Mux.Handle("POST /v1/invite",
		httpx.Chain(inviteHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
			httpx.BudgetMiddleware("invite", inviteBudget, httpx.UserIDKeyExtractor),
		),
	)

	// POST /accept-invite/{token} - attempt budget by IP (public endpoint,
	// every call spends)
	acceptBudget := httpx.NewBudgetLimiter(httpx.Budget{
		Points: 10,
		Window: time.Hour,
		Block:  10 * time.Minute,
	}, httpx.ModeAttempt)
	r.Mux.Handle("POST /v1/accept-invite/{token}",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
			httpx.BudgetMiddleware("accept-invite", acceptBudget, httpx.IPKeyExtractor),
		),
	)
}

func (r *Router) registerRequests() {
	actionHandler := &ActionRequestHandler{RequestService: r.RequestService}
	requestsHandler := &RequestsHandler{RequestService: r.RequestService}

	// POST /action-request - attempt budget by IP (public endpoint)
	actionBudget := httpx.NewBudgetLimiter(httpx.Budget{
		Points: 20,
		Window: time.Hour,
		Block:  10 * time.Minute,
	}, httpx.ModeAttempt)
	r.Mux.Handle("POST /v1/action-request",
		httpx.Chain(actionHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
			httpx.BudgetMiddleware("action-request", actionBudget, httpx.IPKeyExtractor),
		),
	)

	// GET /requests - admin listing
	r.Mux.Handle("GET /v1/requests",
		httpx.Chain(requestsHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.SystemRoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	authed := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/me", authed(http.HandlerFunc(h.HandleMe)))

	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.SystemRoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/users/{id}", authed(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /v1/users/{id}", authed(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/users/{id}", authed(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerOrganizations() {
	h := &OrganizationsHandler{
		OrganizationService: r.OrganizationService,
		MembershipService:   r.MembershipService,
	}

	authed := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /v1/organizations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/organizations",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.SystemRoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/check-slug/{type}/{slug}", authed(http.HandlerFunc(h.HandleCheckSlug)))
	r.Mux.Handle("GET /v1/organizations/{idOrSlug}", authed(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /v1/organizations/{idOrSlug}", authed(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/organizations/{idOrSlug}", authed(http.HandlerFunc(h.HandleDelete)))
	r.Mux.Handle("GET /v1/organizations/{idOrSlug}/members", authed(http.HandlerFunc(h.HandleMembers)))
}

func (r *Router) registerMemberships() {
	h := &MembershipsHandler{MembershipService: r.MembershipService}

	authed := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/menu", authed(http.HandlerFunc(h.HandleMenu)))
	r.Mux.Handle("PUT /v1/memberships/{id}", authed(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/memberships", authed(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
