package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
	"github.com/quorumhq/quorum/pkg/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// A file-backed DB per test; a pooled ":memory:" DSN would give every
	// connection its own empty database.
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store, email, role string) domain.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	u := domain.User{
		ID:         idx.New().String(),
		Email:      email,
		Name:       "Test User",
		Role:       role,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedOrganization(t *testing.T, s *Store, name, slug string) domain.Organization {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
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

func TestUsersRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "alice@example.com", domain.SystemRoleAdmin)

	t.Run("get by id", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Email, got.Email)
		assert.Equal(t, domain.SystemRoleAdmin, got.Role)
	})

	t.Run("get by email is case insensitive", func(t *testing.T) {
		got, err := s.Users().GetUserByEmail(ctx, "ALICE@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		dup := u
		dup.ID = idx.New().String()
		err := s.Users().CreateUser(ctx, dup)
		assert.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.Users().GetUserByID(ctx, "nope")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update user", func(t *testing.T) {
		require.NoError(t, s.Users().UpdateUser(ctx, u.ID, "Alice Prime", "https://img/alice.png"))
		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Prime", got.Name)
		assert.Equal(t, "https://img/alice.png", got.ThumbnailURL)
	})

	t.Run("list with filter and role", func(t *testing.T) {
		seedUser(t, s, "bob@example.com", domain.SystemRoleUser)
		seedUser(t, s, "carol@example.com", domain.SystemRoleUser)

		users, total, err := s.Users().ListUsers(ctx, store.ListParams{Q: "example.com", Limit: 2}, "")
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, users, 2)

		users, total, err = s.Users().ListUsers(ctx, store.ListParams{}, domain.SystemRoleUser)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, users, 2)
	})
}

func TestOrganizationsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	o := seedOrganization(t, s, "Acme", "acme")

	t.Run("resolve by id or slug", func(t *testing.T) {
		byID, err := s.Organizations().GetOrganizationByIDOrSlug(ctx, o.ID)
		require.NoError(t, err)
		bySlug, err := s.Organizations().GetOrganizationByIDOrSlug(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, byID.ID, bySlug.ID)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		dup := o
		dup.ID = idx.New().String()
		err := s.Organizations().CreateOrganization(ctx, dup)
		assert.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update", func(t *testing.T) {
		o.Name = "Acme Corp"
		require.NoError(t, s.Organizations().UpdateOrganization(ctx, o))
		got, err := s.Organizations().GetOrganizationByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", got.Name)
	})

	t.Run("list filters on name", func(t *testing.T) {
		seedOrganization(t, s, "Globex", "globex")
		orgs, total, err := s.Organizations().ListOrganizations(ctx, store.ListParams{Q: "glo"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, orgs, 1)
		assert.Equal(t, "globex", orgs[0].Slug)
	})

	t.Run("delete cascades memberships", func(t *testing.T) {
		victim := seedOrganization(t, s, "Doomed", "doomed")
		u := seedUser(t, s, "member@example.com", domain.SystemRoleUser)
		now := time.Now().UTC()
		m := domain.Membership{
			ID: idx.New().String(), UserID: u.ID, OrganizationID: victim.ID,
			Role: domain.OrgRoleMember, CreatedAt: now, ModifiedAt: now,
		}
		require.NoError(t, s.Memberships().CreateMembership(ctx, m))

		require.NoError(t, s.Organizations().DeleteOrganizations(ctx, []string{victim.ID}))

		_, err := s.Organizations().GetOrganizationByID(ctx, victim.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Memberships().GetMembershipByID(ctx, m.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestMembershipsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	org := seedOrganization(t, s, "Acme", "acme")
	admin := seedUser(t, s, "admin@example.com", domain.SystemRoleUser)
	member := seedUser(t, s, "member@example.com", domain.SystemRoleUser)

	now := time.Now().UTC().Truncate(time.Second)
	mkMembership := func(userID, role string) domain.Membership {
		m := domain.Membership{
			ID: idx.New().String(), UserID: userID, OrganizationID: org.ID,
			Role: role, CreatedAt: now, ModifiedAt: now,
		}
		require.NoError(t, s.Memberships().CreateMembership(ctx, m))
		return m
	}
	adminMembership := mkMembership(admin.ID, domain.OrgRoleAdmin)
	mkMembership(member.ID, domain.OrgRoleMember)

	t.Run("one membership per pair", func(t *testing.T) {
		dup := domain.Membership{
			ID: idx.New().String(), UserID: admin.ID, OrganizationID: org.ID,
			Role: domain.OrgRoleMember, CreatedAt: now, ModifiedAt: now,
		}
		err := s.Memberships().CreateMembership(ctx, dup)
		assert.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("get by pair", func(t *testing.T) {
		got, err := s.Memberships().GetMembership(ctx, admin.ID, org.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrgRoleAdmin, got.Role)
	})

	t.Run("partial update", func(t *testing.T) {
		muted := true
		require.NoError(t, s.Memberships().UpdateMembership(ctx, adminMembership.ID, nil, nil, &muted))
		got, err := s.Memberships().GetMembershipByID(ctx, adminMembership.ID)
		require.NoError(t, err)
		assert.True(t, got.Muted)
		assert.Equal(t, domain.OrgRoleAdmin, got.Role) // untouched

		role := domain.OrgRoleMember
		require.NoError(t, s.Memberships().UpdateMembership(ctx, adminMembership.ID, &role, nil, nil))
		got, err = s.Memberships().GetMembershipByID(ctx, adminMembership.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrgRoleMember, got.Role)
		assert.True(t, got.Muted) // untouched
	})

	t.Run("list members with role filter", func(t *testing.T) {
		members, total, err := s.Memberships().ListMembers(ctx, org.ID, store.ListParams{}, domain.OrgRoleMember)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, members, 2)
		for _, m := range members {
			assert.Equal(t, domain.OrgRoleMember, m.OrgRole)
			assert.NotEmpty(t, m.Email)
		}
	})

	t.Run("list user organizations", func(t *testing.T) {
		orgs, err := s.Memberships().ListUserOrganizations(ctx, member.ID)
		require.NoError(t, err)
		require.Len(t, orgs, 1)
		assert.Equal(t, "acme", orgs[0].Slug)
		assert.Equal(t, domain.OrgRoleMember, orgs[0].Membership.Role)
	})

	t.Run("delete memberships", func(t *testing.T) {
		require.NoError(t, s.Memberships().DeleteMemberships(ctx, org.ID, []string{member.ID}))
		_, err := s.Memberships().GetMembership(ctx, member.ID, org.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTokensRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	org := seedOrganization(t, s, "Acme", "acme")
	now := time.Now().UTC().Truncate(time.Second)

	tok := domain.Token{
		ID:             idx.New().String(),
		Fingerprint:    "fp-1",
		Email:          "invitee@example.com",
		Role:           domain.OrgRoleMember,
		OrganizationID: org.ID,
		CreatedBy:      "admin-1",
		ExpiresAt:      now.Add(time.Hour),
		CreatedAt:      now,
	}
	require.NoError(t, s.Tokens().CreateToken(ctx, tok))

	t.Run("round trip", func(t *testing.T) {
		got, err := s.Tokens().GetTokenByID(ctx, tok.ID)
		require.NoError(t, err)
		assert.Equal(t, tok.Email, got.Email)
		assert.Equal(t, org.ID, got.OrganizationID)
		assert.False(t, got.Consumed())
	})

	t.Run("consume once", func(t *testing.T) {
		require.NoError(t, s.Tokens().ConsumeToken(ctx, tok.ID, "user-1", now))

		got, err := s.Tokens().GetTokenByID(ctx, tok.ID)
		require.NoError(t, err)
		assert.True(t, got.Consumed())
		assert.Equal(t, "user-1", got.ConsumedBy)

		// Second consumption loses.
		err = s.Tokens().ConsumeToken(ctx, tok.ID, "user-2", now)
		assert.ErrorIs(t, err, store.ErrNotFound)

		// The winner's attribution is untouched.
		got, err = s.Tokens().GetTokenByID(ctx, tok.ID)
		require.NoError(t, err)
		assert.Equal(t, "user-1", got.ConsumedBy)
	})

	t.Run("delete expired", func(t *testing.T) {
		stale := tok
		stale.ID = idx.New().String()
		stale.Fingerprint = "fp-2"
		stale.ExpiresAt = now.Add(-time.Hour)
		require.NoError(t, s.Tokens().CreateToken(ctx, stale))

		require.NoError(t, s.Tokens().DeleteExpiredTokens(ctx, now))

		_, err := s.Tokens().GetTokenByID(ctx, stale.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Tokens().GetTokenByID(ctx, tok.ID)
		assert.NoError(t, err) // unexpired stays
	})
}

func TestAccessRequestsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	org := seedOrganization(t, s, "Acme", "acme")
	user := seedUser(t, s, "alice@example.com", domain.SystemRoleUser)
	now := time.Now().UTC().Truncate(time.Second)

	reqs := []domain.AccessRequest{
		{
			ID: idx.New().String(), Email: "alice@example.com",
			Type: domain.RequestTypeOrganization, UserID: user.ID,
			OrganizationID: org.ID, Message: "let me in", CreatedAt: now,
		},
		{
			ID: idx.New().String(), Email: "visitor@example.com",
			Type: domain.RequestTypeNewsletter, CreatedAt: now.Add(time.Second),
		},
	}
	for _, r := range reqs {
		require.NoError(t, s.AccessRequests().CreateAccessRequest(ctx, r))
	}

	t.Run("list joins display fields", func(t *testing.T) {
		out, total, err := s.AccessRequests().ListAccessRequests(ctx, store.ListParams{Sort: "created_at"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, out, 2)

		assert.Equal(t, "Test User", out[0].UserName)
		assert.Equal(t, "acme", out[0].OrganizationSlug)
		assert.Equal(t, "let me in", out[0].Message)

		// Unlinked request leaves the joined fields empty.
		assert.Empty(t, out[1].UserName)
		assert.Empty(t, out[1].OrganizationName)
	})

	t.Run("repeat submissions are retained", func(t *testing.T) {
		again := reqs[1]
		again.ID = idx.New().String()
		require.NoError(t, s.AccessRequests().CreateAccessRequest(ctx, again))

		_, total, err := s.AccessRequests().ListAccessRequests(ctx, store.ListParams{Q: "visitor"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestAccessRequestsSortByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// The id order deliberately disagrees with created_at so the test can
	// tell which column actually drove the sort.
	now := time.Now().UTC().Truncate(time.Second)
	older := domain.AccessRequest{
		ID: idx.NewAt(now.Add(-time.Hour)).String(), Email: "first@example.com",
		Type: domain.RequestTypeWaitlist, CreatedAt: now.Add(time.Second),
	}
	newer := domain.AccessRequest{
		ID: idx.NewAt(now).String(), Email: "second@example.com",
		Type: domain.RequestTypeWaitlist, CreatedAt: now,
	}
	require.NoError(t, s.AccessRequests().CreateAccessRequest(ctx, older))
	require.NoError(t, s.AccessRequests().CreateAccessRequest(ctx, newer))

	out, total, err := s.AccessRequests().ListAccessRequests(ctx, store.ListParams{Sort: "id"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, out, 2)
	assert.Equal(t, older.ID, out[0].ID)
	assert.Equal(t, newer.ID, out[1].ID)
}

func TestWithTx(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			now := time.Now().UTC()
			return tx.Users().CreateUser(ctx, domain.User{
				ID: idx.New().String(), Email: "tx@example.com",
				Role: domain.SystemRoleUser, CreatedAt: now, ModifiedAt: now,
			})
		})
		require.NoError(t, err)

		_, err = s.Users().GetUserByEmail(ctx, "tx@example.com")
		assert.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		wantErr := assert.AnError
		err := s.WithTx(ctx, func(tx store.Tx) error {
			now := time.Now().UTC()
			if err := tx.Users().CreateUser(ctx, domain.User{
				ID: idx.New().String(), Email: "rollback@example.com",
				Role: domain.SystemRoleUser, CreatedAt: now, ModifiedAt: now,
			}); err != nil {
				return err
			}
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)

		_, err = s.Users().GetUserByEmail(ctx, "rollback@example.com")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
