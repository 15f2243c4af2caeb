package store

import (
	"context"
	"errors"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// ListParams are the shared pagination/sort/filter knobs for listing
// endpoints. Sort values are validated at the HTTP boundary against each
// endpoint's closed enum; drivers additionally whitelist column names.
type ListParams struct {
	Q      string // case-insensitive substring filter, field per endpoint
	Sort   string
	Order  string // "asc" or "desc"
	Limit  int
	Offset int
}

// Descending reports whether results should sort descending.
func (p ListParams) Descending() bool { return p.Order == "desc" }

// Store is the root data access interface. Concrete drivers (sqlite)
// implement it. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Organizations() Organizations
	Memberships() Memberships
	Tokens() Tokens
	AccessRequests() AccessRequests

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Preferred over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser mutates name/thumbnail and bumps modified_at.
	UpdateUser(ctx context.Context, userID, name, thumbnailURL string) error

	// UpdatePasswordHash sets the password_hash (argon2id) and bumps
	// modified_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// DeleteUser cascades to memberships (per schema).
	DeleteUser(ctx context.Context, userID string) error

	// ListUsers returns a page of users plus the unpaginated total.
	// Q filters on email and name. Role filters when non-empty.
	ListUsers(ctx context.Context, p ListParams, role string) ([]domain.User, int, error)
}

type Organizations interface {
	CreateOrganization(ctx context.Context, o domain.Organization) error

	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// GetOrganizationByIDOrSlug resolves a path parameter that may be
	// either form.
	GetOrganizationByIDOrSlug(ctx context.Context, idOrSlug string) (domain.Organization, error)

	// ListOrganizations returns a page plus the unpaginated total. Q
	// filters on name.
	ListOrganizations(ctx context.Context, p ListParams) ([]domain.Organization, int, error)

	// UpdateOrganization mutates name/slug/thumbnail and bumps modified_at.
	UpdateOrganization(ctx context.Context, o domain.Organization) error

	// DeleteOrganizations removes the given organizations, cascading to
	// memberships.
	DeleteOrganizations(ctx context.Context, ids []string) error
}

type Memberships interface {
	CreateMembership(ctx context.Context, m domain.Membership) error

	GetMembershipByID(ctx context.Context, id string) (domain.Membership, error)

	// GetMembership returns the membership for a (user, organization)
	// pair.
	GetMembership(ctx context.Context, userID, organizationID string) (domain.Membership, error)

	// UpdateMembership applies the non-nil fields and bumps modified_at.
	UpdateMembership(ctx context.Context, id string, role *string, inactive, muted *bool) error

	// DeleteMemberships removes the memberships of the given users in one
	// organization.
	DeleteMemberships(ctx context.Context, organizationID string, userIDs []string) error

	// ListMembers returns a page of members of an organization plus the
	// unpaginated total. Q filters on email and name. Role filters on the
	// organization role when non-empty.
	ListMembers(ctx context.Context, organizationID string, p ListParams, role string) ([]domain.Member, int, error)

	// ListUserOrganizations returns every organization the user belongs
	// to, with the membership attached. Drives the menu endpoint.
	ListUserOrganizations(ctx context.Context, userID string) ([]domain.UserOrganization, error)
}

type Tokens interface {
	CreateToken(ctx context.Context, t domain.Token) error

	GetTokenByID(ctx context.Context, id string) (domain.Token, error)

	// ConsumeToken atomically transitions the token to consumed with a
	// single conditional update. Returns ErrNotFound when the token does
	// not exist or was already consumed, so racing acceptances resolve to
	// exactly one winner.
	ConsumeToken(ctx context.Context, id, userID string, now time.Time) error

	// DeleteExpiredTokens is housekeeping.
	DeleteExpiredTokens(ctx context.Context, now time.Time) error
}

type AccessRequests interface {
	// CreateAccessRequest appends a record. Never updates.
	CreateAccessRequest(ctx context.Context, r domain.AccessRequest) error

	// ListAccessRequests returns a page of requests joined with user and
	// organization display fields, plus the unpaginated total. Q filters
	// on email.
	ListAccessRequests(ctx context.Context, p ListParams) ([]domain.AccessRequestDetails, int, error)
}
