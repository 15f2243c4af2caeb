package http

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/mail"
	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/internal/org/store"
	"github.com/quorumhq/quorum/internal/org/store/drivers/sqlite"
	"github.com/quorumhq/quorum/pkg/idx"
	"github.com/quorumhq/quorum/pkg/jwtx"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

const testIssuer = "https://quorum.test"

type captureMailer struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (m *captureMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) last(t *testing.T) mail.Message {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent)
	return m.sent[len(m.sent)-1]
}

type testEnv struct {
	store  store.Store
	codec  *jwtx.HS256
	mailer *captureMailer
	server *httptest.Server
	client *quorumsdk.SDKClient
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	codec := jwtx.NewHS256([]byte("test-secret"), testIssuer)
	mailer := &captureMailer{}

	router := NewRouter(codec, "test", st, slog.Default())
	router.InviteService = &service.InviteService{
		Store:   st,
		Codec:   codec,
		Mailer:  mailer,
		BaseURL: testIssuer,
	}
	router.RequestService = &service.RequestService{Store: st}
	router.UserService = &service.UserService{Store: st}
	router.OrganizationService = &service.OrganizationService{Store: st}
	router.MembershipService = &service.MembershipService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{
		store:  st,
		codec:  codec,
		mailer: mailer,
		server: srv,
		client: quorumsdk.NewSDKClient(srv.URL),
	}
}

func (e *testEnv) seedUser(t *testing.T, email, role string) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:         idx.New().String(),
		Email:      email,
		Name:       "Seeded",
		Role:       role,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	require.NoError(t, e.store.Users().CreateUser(context.Background(), u))
	return u
}

// sessionFor mints a bearer access token for the user and opens a session.
func (e *testEnv) sessionFor(t *testing.T, u domain.User) *quorumsdk.Session {
	t.Helper()
	claims := jwtx.NewClaims(u.ID, testIssuer, time.Hour, time.Now().UTC())
	claims.Role = u.Role
	raw, err := e.codec.Sign(claims)
	require.NoError(t, err)
	return e.client.NewSession(raw)
}

// tokenFromMail pulls the raw invitation token out of the accept link in
// the delivered email body.
func tokenFromMail(t *testing.T, body string) string {
	t.Helper()
	_, rest, ok := strings.Cut(body, "/accept-invite/")
	require.True(t, ok, "mail body should carry an accept link")
	token, _, _ := strings.Cut(rest, "\r")
	require.NotEmpty(t, token)
	return token
}

func TestInviteLifecycleHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	admin := env.seedUser(t, "root@example.com", domain.SystemRoleAdmin)
	session := env.sessionFor(t, admin)

	inviteResp, err := session.Invite(ctx, quorumsdk.InviteRequest{
		Emails: []string{"invitee@example.com"},
		Role:   domain.SystemRoleUser,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"invitee@example.com"}, inviteResp.Invited)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), inviteResp.ExpiresAt, time.Minute)

	token := tokenFromMail(t, env.mailer.last(t).Body)

	check, err := env.client.CheckToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "invitee@example.com", check.Email)
	assert.Equal(t, domain.SystemRoleUser, check.Role)
	assert.Empty(t, check.OrganizationSlug)

	accept, err := env.client.AcceptInvite(ctx, token, quorumsdk.AcceptInviteRequest{
		Name:     "New User",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	assert.Equal(t, "invitee@example.com", accept.User.Email)
	assert.Equal(t, "/home", accept.TargetPath)

	t.Run("second accept conflicts", func(t *testing.T) {
		_, err := env.client.AcceptInvite(ctx, token, quorumsdk.AcceptInviteRequest{})
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.StatusCode)
		assert.Equal(t, quorumsdk.ErrorCodeTokenConsumed, apiErr.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := env.client.CheckToken(ctx, "not-a-token")
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, quorumsdk.ErrorCodeTokenInvalid, apiErr.Code)
	})
}

func TestOrganizationInviteHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	admin := env.seedUser(t, "root@example.com", domain.SystemRoleAdmin)
	session := env.sessionFor(t, admin)

	org, err := session.CreateOrganization(ctx, quorumsdk.CreateOrganizationRequest{
		Name: "Acme Corp",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme-corp", org.Slug)

	_, err = session.Invite(ctx, quorumsdk.InviteRequest{
		Emails:         []string{"member@example.com"},
		Role:           domain.OrgRoleMember,
		OrganizationID: org.ID,
	})
	require.NoError(t, err)

	token := tokenFromMail(t, env.mailer.last(t).Body)

	check, err := env.client.CheckToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", check.OrganizationName)
	assert.Equal(t, "acme-corp", check.OrganizationSlug)

	accept, err := env.client.AcceptInvite(ctx, token, quorumsdk.AcceptInviteRequest{
		Name:     "Member",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "/acme-corp", accept.TargetPath)

	members, err := session.ListMembers(ctx, org.Slug, quorumsdk.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, members.Total)
}

func TestCheckSlugHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user := env.seedUser(t, "founder@example.com", domain.SystemRoleUser)
	session := env.sessionFor(t, user)

	_, err := session.CreateOrganization(ctx, quorumsdk.CreateOrganizationRequest{
		Name: "Acme Corp",
	})
	require.NoError(t, err)

	t.Run("taken slug", func(t *testing.T) {
		check, err := session.CheckSlug(ctx, "ORGANIZATION", "acme-corp")
		require.NoError(t, err)
		assert.False(t, check.Available)
	})

	t.Run("free slug", func(t *testing.T) {
		check, err := session.CheckSlug(ctx, "organization", "globex")
		require.NoError(t, err)
		assert.True(t, check.Available)
	})

	t.Run("unknown resource type", func(t *testing.T) {
		_, err := session.CheckSlug(ctx, "WIDGET", "acme-corp")
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Equal(t, quorumsdk.ErrorCodeValidationError, apiErr.Code)
	})

	t.Run("requires authentication", func(t *testing.T) {
		anon := env.client.NewSession("")
		_, err := anon.CheckSlug(ctx, "ORGANIZATION", "acme-corp")
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.StatusCode)
	})
}

func TestAuthRequiredHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("invite without token", func(t *testing.T) {
		session := env.client.NewSession("")
		_, err := session.Invite(ctx, quorumsdk.InviteRequest{
			Emails: []string{"a@example.com"},
			Role:   domain.SystemRoleUser,
		})
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.StatusCode)
	})

	t.Run("requests listing needs admin", func(t *testing.T) {
		user := env.seedUser(t, "pleb@example.com", domain.SystemRoleUser)
		session := env.sessionFor(t, user)
		_, err := session.GetRequests(ctx, quorumsdk.ListOptions{})
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 403, apiErr.StatusCode)
	})

	t.Run("member cannot invite to platform", func(t *testing.T) {
		user := env.seedUser(t, "user@example.com", domain.SystemRoleUser)
		session := env.sessionFor(t, user)
		_, err := session.Invite(ctx, quorumsdk.InviteRequest{
			Emails: []string{"a@example.com"},
			Role:   domain.SystemRoleUser,
		})
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 403, apiErr.StatusCode)
		assert.Equal(t, quorumsdk.ErrorCodeForbidden, apiErr.Code)
	})
}

func TestActionRequestHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	resp, err := env.client.SubmitActionRequest(ctx, quorumsdk.ActionRequest{
		Type:    domain.RequestTypeWaitlist,
		Email:   "curious@example.com",
		Message: "let me in",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.RequestTypeWaitlist, resp.Type)

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := env.client.SubmitActionRequest(ctx, quorumsdk.ActionRequest{
			Type:  "SPAM_REQUEST",
			Email: "curious@example.com",
		})
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
	})

	t.Run("admin sees recorded request", func(t *testing.T) {
		admin := env.seedUser(t, "root@example.com", domain.SystemRoleAdmin)
		session := env.sessionFor(t, admin)

		listed, err := session.GetRequests(ctx, quorumsdk.ListOptions{})
		require.NoError(t, err)
		require.Equal(t, 1, listed.Total)
		assert.Equal(t, "curious@example.com", listed.Requests[0].Email)
	})
}

func TestUsersEndpointsHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	admin := env.seedUser(t, "root@example.com", domain.SystemRoleAdmin)
	user := env.seedUser(t, "user@example.com", domain.SystemRoleUser)

	adminSession := env.sessionFor(t, admin)
	userSession := env.sessionFor(t, user)

	t.Run("me returns caller", func(t *testing.T) {
		me, err := userSession.Me(ctx)
		require.NoError(t, err)
		assert.Equal(t, user.ID, me.ID)
		assert.Equal(t, "user@example.com", me.Email)
	})

	t.Run("listing is admin only", func(t *testing.T) {
		listed, err := adminSession.ListUsers(ctx, quorumsdk.ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, listed.Total)

		_, err = userSession.ListUsers(ctx, quorumsdk.ListOptions{})
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 403, apiErr.StatusCode)
	})

	t.Run("self update allowed", func(t *testing.T) {
		updated, err := userSession.UpdateUser(ctx, user.ID, quorumsdk.UpdateUserRequest{
			Name: "Renamed",
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
	})

	t.Run("updating someone else is forbidden", func(t *testing.T) {
		_, err := userSession.UpdateUser(ctx, admin.ID, quorumsdk.UpdateUserRequest{
			Name: "Hijacked",
		})
		var apiErr *quorumsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 403, apiErr.StatusCode)
	})
}

func TestMembershipEndpointsHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.seedUser(t, "owner@example.com", domain.SystemRoleUser)
	ownerSession := env.sessionFor(t, owner)

	org, err := ownerSession.CreateOrganization(ctx, quorumsdk.CreateOrganizationRequest{
		Name: "Club",
	})
	require.NoError(t, err)

	t.Run("menu lists the new organization", func(t *testing.T) {
		menu, err := ownerSession.Menu(ctx)
		require.NoError(t, err)
		require.Len(t, menu.Organizations, 1)
		assert.Equal(t, org.ID, menu.Organizations[0].ID)
		assert.Equal(t, domain.OrgRoleAdmin, menu.Organizations[0].Membership.Role)
	})

	t.Run("member toggles own flags", func(t *testing.T) {
		menu, err := ownerSession.Menu(ctx)
		require.NoError(t, err)
		membershipID := menu.Organizations[0].Membership.ID

		muted := true
		updated, err := ownerSession.UpdateMembership(ctx, membershipID, quorumsdk.UpdateMembershipRequest{
			Muted: &muted,
		})
		require.NoError(t, err)
		assert.True(t, updated.Muted)
	})
}

func TestHealthEndpointsHTTP(t *testing.T) {
	env := newTestEnv(t)

	health, err := env.client.Livez(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Version)
}
