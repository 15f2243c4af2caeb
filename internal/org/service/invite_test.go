package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/mail"
	"github.com/quorumhq/quorum/internal/org/store"
	"github.com/quorumhq/quorum/internal/org/store/drivers/sqlite"
	"github.com/quorumhq/quorum/pkg/idx"
	"github.com/quorumhq/quorum/pkg/jwtx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureMailer records messages instead of sending them.
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

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newInviteService(t *testing.T) (*InviteService, *captureMailer) {
	t.Helper()
	mailer := &captureMailer{}
	svc := &InviteService{
		Store:   newTestStore(t),
		Codec:   jwtx.NewHS256([]byte("test-secret"), "https://quorum.test"),
		Mailer:  mailer,
		BaseURL: "https://quorum.test",
	}
	return svc, mailer
}

func seedUser(t *testing.T, s store.Store, email, role string) domain.User {
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
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedOrganization(t *testing.T, s store.Store, name, slug string) domain.Organization {
	t.Helper()
	now := time.Now().UTC()
	o := domain.Organization{
		ID:         idx.New().String(),
		Name:       name,
		Slug:       slug,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	require.NoError(t, s.Organizations().CreateOrganization(context.Background(), o))
	return o
}

func seedMembership(t *testing.T, s store.Store, userID, orgID, role string) domain.Membership {
	t.Helper()
	now := time.Now().UTC()
	m := domain.Membership{
		ID:             idx.New().String(),
		UserID:         userID,
		OrganizationID: orgID,
		Role:           role,
		CreatedAt:      now,
		ModifiedAt:     now,
	}
	require.NoError(t, s.Memberships().CreateMembership(context.Background(), m))
	return m
}

func TestInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("system admin invites to platform", func(t *testing.T) {
		svc, mailer := newInviteService(t)
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)

		invs, err := svc.Invite(ctx, admin.ID, []string{"New.User@Example.com"}, domain.SystemRoleUser, "")
		require.NoError(t, err)
		require.Len(t, invs, 1)
		assert.Equal(t, "new.user@example.com", invs[0].Email)
		assert.NotEmpty(t, invs[0].Token)

		row, err := svc.Store.Tokens().GetTokenByID(ctx, invs[0].TokenID)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, row.CreatedBy)
		assert.WithinDuration(t, time.Now().Add(InviteTTL), row.ExpiresAt, time.Minute)

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "new.user@example.com", mailer.sent[0].To)
		assert.Contains(t, mailer.sent[0].Body, "/accept-invite/"+invs[0].Token)
	})

	t.Run("org admin invites members", func(t *testing.T) {
		svc, _ := newInviteService(t)
		org := seedOrganization(t, svc.Store, "Acme", "acme")
		orgAdmin := seedUser(t, svc.Store, "lead@example.com", domain.SystemRoleUser)
		seedMembership(t, svc.Store, orgAdmin.ID, org.ID, domain.OrgRoleAdmin)

		invs, err := svc.Invite(ctx, orgAdmin.ID, []string{"a@example.com", "b@example.com"}, domain.OrgRoleMember, org.ID)
		require.NoError(t, err)
		assert.Len(t, invs, 2)
	})

	t.Run("plain member cannot invite", func(t *testing.T) {
		svc, _ := newInviteService(t)
		org := seedOrganization(t, svc.Store, "Acme", "acme")
		member := seedUser(t, svc.Store, "member@example.com", domain.SystemRoleUser)
		seedMembership(t, svc.Store, member.ID, org.ID, domain.OrgRoleMember)

		_, err := svc.Invite(ctx, member.ID, []string{"x@example.com"}, domain.OrgRoleMember, org.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("non-admin cannot invite to platform", func(t *testing.T) {
		svc, _ := newInviteService(t)
		user := seedUser(t, svc.Store, "user@example.com", domain.SystemRoleUser)

		_, err := svc.Invite(ctx, user.ID, []string{"x@example.com"}, domain.SystemRoleUser, "")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("role outside the closed set", func(t *testing.T) {
		svc, _ := newInviteService(t)
		org := seedOrganization(t, svc.Store, "Acme", "acme")
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)

		_, err := svc.Invite(ctx, admin.ID, []string{"x@example.com"}, "OWNER", org.ID)
		assert.ErrorIs(t, err, ErrInvalidRole)

		_, err = svc.Invite(ctx, admin.ID, []string{"x@example.com"}, "MEMBER", "")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("unknown organization", func(t *testing.T) {
		svc, _ := newInviteService(t)
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)

		_, err := svc.Invite(ctx, admin.ID, []string{"x@example.com"}, domain.OrgRoleMember, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed email rejects the whole batch", func(t *testing.T) {
		svc, mailer := newInviteService(t)
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)

		_, err := svc.Invite(ctx, admin.ID, []string{"ok@example.com", "not-an-email"}, domain.SystemRoleUser, "")
		assert.ErrorIs(t, err, ErrInvalidEmail)
		assert.Empty(t, mailer.sent)
	})
}

func TestCheckToken(t *testing.T) {
	ctx := context.Background()

	mint := func(t *testing.T, svc *InviteService, orgID string) Invitation {
		t.Helper()
		admin := seedUser(t, svc.Store, "root-"+idx.New().String()+"@example.com", domain.SystemRoleAdmin)
		role := domain.SystemRoleUser
		if orgID != "" {
			role = domain.OrgRoleMember
		}
		invs, err := svc.Invite(ctx, admin.ID, []string{"invitee@example.com"}, role, orgID)
		require.NoError(t, err)
		return invs[0]
	}

	t.Run("valid organization token", func(t *testing.T) {
		svc, _ := newInviteService(t)
		org := seedOrganization(t, svc.Store, "Acme", "acme")
		inv := mint(t, svc, org.ID)

		details, err := svc.CheckToken(ctx, inv.Token)
		require.NoError(t, err)
		assert.Equal(t, "invitee@example.com", details.Email)
		assert.Equal(t, "Acme", details.OrganizationName)
		assert.Equal(t, "acme", details.OrganizationSlug)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc, _ := newInviteService(t)
		_, err := svc.CheckToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("tampered token", func(t *testing.T) {
		svc, _ := newInviteService(t)
		inv := mint(t, svc, "")

		forged := inv.Token[:len(inv.Token)-2] + "xx"
		_, err := svc.CheckToken(ctx, forged)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("signed but never issued", func(t *testing.T) {
		svc, _ := newInviteService(t)
		claims := jwtx.NewClaims("ghost@example.com", "https://quorum.test", time.Hour, time.Now().UTC())
		claims.Email = "ghost@example.com"
		raw, err := svc.Codec.Sign(claims)
		require.NoError(t, err)

		_, err = svc.CheckToken(ctx, raw)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		svc, _ := newInviteService(t)
		now := time.Now().UTC()
		claims := jwtx.NewClaims("late@example.com", "https://quorum.test", -time.Hour, now)
		claims.Email = "late@example.com"
		raw, err := svc.Codec.Sign(claims)
		require.NoError(t, err)

		_, err = svc.CheckToken(ctx, raw)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("organization deleted after issuance", func(t *testing.T) {
		svc, _ := newInviteService(t)
		org := seedOrganization(t, svc.Store, "Doomed", "doomed")
		inv := mint(t, svc, org.ID)

		require.NoError(t, svc.Store.Organizations().DeleteOrganizations(ctx, []string{org.ID}))

		_, err := svc.CheckToken(ctx, inv.Token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("check does not consume", func(t *testing.T) {
		svc, _ := newInviteService(t)
		inv := mint(t, svc, "")

		for range 3 {
			_, err := svc.CheckToken(ctx, inv.Token)
			require.NoError(t, err)
		}
	})
}

func TestAcceptInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("new user joins organization", func(t *testing.T) {
		svc, _ := newInviteService(t)
		org := seedOrganization(t, svc.Store, "Acme", "acme")
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)
		invs, err := svc.Invite(ctx, admin.ID, []string{"newbie@example.com"}, domain.OrgRoleMember, org.ID)
		require.NoError(t, err)

		res, err := svc.AcceptInvite(ctx, invs[0].Token, "Newbie", "s3cret-password")
		require.NoError(t, err)
		assert.Equal(t, "acme", res.OrganizationSlug)
		assert.Equal(t, "newbie@example.com", res.User.Email)
		assert.NotEmpty(t, res.User.PasswordHash)
		assert.True(t, strings.HasPrefix(res.User.PasswordHash, "$argon2id$"))

		membership, err := svc.Store.Memberships().GetMembership(ctx, res.User.ID, org.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrgRoleMember, membership.Role)
		assert.False(t, membership.Inactive)

		row, err := svc.Store.Tokens().GetTokenByID(ctx, invs[0].TokenID)
		require.NoError(t, err)
		assert.True(t, row.Consumed())
		assert.Equal(t, res.User.ID, row.ConsumedBy)
	})

	t.Run("existing user gains membership", func(t *testing.T) {
		svc, _ := newInviteService(t)
		org := seedOrganization(t, svc.Store, "Acme", "acme")
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)
		existing := seedUser(t, svc.Store, "veteran@example.com", domain.SystemRoleUser)

		invs, err := svc.Invite(ctx, admin.ID, []string{existing.Email}, domain.OrgRoleAdmin, org.ID)
		require.NoError(t, err)

		res, err := svc.AcceptInvite(ctx, invs[0].Token, "", "")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, res.User.ID)

		membership, err := svc.Store.Memberships().GetMembership(ctx, existing.ID, org.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrgRoleAdmin, membership.Role)
	})

	t.Run("re-invite reactivates an inactive membership", func(t *testing.T) {
		svc, _ := newInviteService(t)
		org := seedOrganization(t, svc.Store, "Acme", "acme")
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)
		lapsed := seedUser(t, svc.Store, "lapsed@example.com", domain.SystemRoleUser)
		seeded := seedMembership(t, svc.Store, lapsed.ID, org.ID, domain.OrgRoleMember)

		inactive := true
		require.NoError(t, svc.Store.Memberships().UpdateMembership(ctx, seeded.ID, nil, &inactive, nil))

		invs, err := svc.Invite(ctx, admin.ID, []string{lapsed.Email}, domain.OrgRoleAdmin, org.ID)
		require.NoError(t, err)

		_, err = svc.AcceptInvite(ctx, invs[0].Token, "", "")
		require.NoError(t, err)

		membership, err := svc.Store.Memberships().GetMembership(ctx, lapsed.ID, org.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, membership.ID)
		assert.False(t, membership.Inactive)
		assert.Equal(t, domain.OrgRoleAdmin, membership.Role)
	})

	t.Run("concurrent acceptances admit exactly one", func(t *testing.T) {
		svc, _ := newInviteService(t)
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)
		invs, err := svc.Invite(ctx, admin.ID, []string{"contended@example.com"}, domain.SystemRoleUser, "")
		require.NoError(t, err)

		const attempts = 8
		errs := make([]error, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = svc.AcceptInvite(ctx, invs[0].Token, "Racer", "pw-123456")
			}()
		}
		wg.Wait()

		var won, consumed int
		for _, err := range errs {
			switch {
			case err == nil:
				won++
			case errors.Is(err, ErrTokenConsumed):
				consumed++
			default:
				t.Fatalf("unexpected acceptance error: %v", err)
			}
		}
		assert.Equal(t, 1, won)
		assert.Equal(t, attempts-1, consumed)
	})

	t.Run("second acceptance observes consumed", func(t *testing.T) {
		svc, _ := newInviteService(t)
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)
		invs, err := svc.Invite(ctx, admin.ID, []string{"once@example.com"}, domain.SystemRoleUser, "")
		require.NoError(t, err)

		_, err = svc.AcceptInvite(ctx, invs[0].Token, "Once", "pw-123456")
		require.NoError(t, err)

		_, err = svc.AcceptInvite(ctx, invs[0].Token, "Twice", "pw-123456")
		assert.ErrorIs(t, err, ErrTokenConsumed)
	})

	t.Run("system invite grants system role", func(t *testing.T) {
		svc, _ := newInviteService(t)
		admin := seedUser(t, svc.Store, "root@example.com", domain.SystemRoleAdmin)
		invs, err := svc.Invite(ctx, admin.ID, []string{"second-admin@example.com"}, domain.SystemRoleAdmin, "")
		require.NoError(t, err)

		res, err := svc.AcceptInvite(ctx, invs[0].Token, "Second Admin", "pw-123456")
		require.NoError(t, err)
		assert.Equal(t, domain.SystemRoleAdmin, res.User.Role)
		assert.Empty(t, res.OrganizationSlug)
	})
}
