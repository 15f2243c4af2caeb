package service

import (
	"context"
	"testing"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAccessRequest(t *testing.T) {
	ctx := context.Background()
	svc := &RequestService{Store: newTestStore(t)}

	t.Run("valid request", func(t *testing.T) {
		req, err := svc.Submit(ctx, domain.RequestTypeWaitlist, "Eager@Example.com", "", "", "  please  ")
		require.NoError(t, err)
		assert.NotEmpty(t, req.ID)
		assert.Equal(t, "eager@example.com", req.Email)
		assert.Equal(t, "please", req.Message)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := svc.Submit(ctx, "SPAM_REQUEST", "x@example.com", "", "", "")
		assert.ErrorIs(t, err, ErrInvalidRequestType)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := svc.Submit(ctx, domain.RequestTypeContact, "nope", "", "", "")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("no dedup", func(t *testing.T) {
		_, err := svc.Submit(ctx, domain.RequestTypeWaitlist, "eager@example.com", "", "", "")
		require.NoError(t, err)

		_, total, err := svc.GetRequests(ctx, store.ListParams{Q: "eager"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestGetRequests(t *testing.T) {
	ctx := context.Background()
	svc := &RequestService{Store: newTestStore(t)}

	org := seedOrganization(t, svc.Store, "Acme", "acme")
	user := seedUser(t, svc.Store, "alice@example.com", domain.SystemRoleUser)

	_, err := svc.Submit(ctx, domain.RequestTypeOrganization, user.Email, user.ID, org.ID, "let me in")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, domain.RequestTypeNewsletter, "visitor@example.com", "", "", "")
	require.NoError(t, err)

	out, total, err := svc.GetRequests(ctx, store.ListParams{Sort: "type", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, out, 2)

	// NEWSLETTER sorts before ORGANIZATION.
	assert.Equal(t, domain.RequestTypeNewsletter, out[0].Type)
	assert.Equal(t, "Seeded", out[1].UserName)
	assert.Equal(t, "acme", out[1].OrganizationSlug)
}
