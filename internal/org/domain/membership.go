package domain

import "time"

// Organization-level membership roles.
const (
	OrgRoleAdmin  = "ADMIN"
	OrgRoleMember = "MEMBER"
)

// ValidOrgRole reports whether role is an assignable organization role.
func ValidOrgRole(role string) bool {
	return role == OrgRoleAdmin || role == OrgRoleMember
}

// Member is a user joined with their membership in one organization, as the
// members listing returns them.
type Member struct {
	User

	MembershipID string
	OrgRole      string
	Inactive     bool
	Muted        bool
}

// Membership joins a user to an organization with a role and status flags.
// One membership exists per (user, organization) pair.
type Membership struct {
	ID             string
	UserID         string
	OrganizationID string
	Role           string // OrgRoleAdmin or OrgRoleMember
	Inactive       bool   // archived by the member; hidden from their menu
	Muted          bool   // notifications suppressed
	CreatedAt      time.Time
	ModifiedAt     time.Time
}
