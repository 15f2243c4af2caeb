package quorumsdk

import "time"

// ============================================================================
// Invitations
// ============================================================================

// InviteRequest asks the service to mint invitations for a batch of
// addresses. OrganizationID empty means a platform-level invite (system
// admin only).
type InviteRequest struct {
	Emails         []string `json:"emails"`
	Role           string   `json:"role"`
	OrganizationID string   `json:"organization_id,omitempty"`
}

// InviteResponse reports the minted invitations. Raw tokens are delivered
// over email only and never appear here.
type InviteResponse struct {
	Invited   []string  `json:"invited"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CheckTokenResponse is the metadata an invitation token reveals before
// acceptance.
type CheckTokenResponse struct {
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	OrganizationName string    `json:"organization_name,omitempty"`
	OrganizationSlug string    `json:"organization_slug,omitempty"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// AcceptInviteRequest carries the credentials for redeeming an invitation.
// Both fields are optional for users that already have an account.
type AcceptInviteRequest struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

// AcceptInviteResponse is returned on successful acceptance. TargetPath is
// where a UI client should navigate next.
type AcceptInviteResponse struct {
	User       User   `json:"user"`
	TargetPath string `json:"target_path"`
}

// ============================================================================
// Access requests
// ============================================================================

type ActionRequest struct {
	Type           string `json:"type"`
	Email          string `json:"email"`
	UserID         string `json:"user_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	Message        string `json:"message,omitempty"`
}

type ActionRequestResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// AccessRequestDetails is one row of the admin requests listing.
type AccessRequestDetails struct {
	ID                    string    `json:"id"`
	Email                 string    `json:"email"`
	Type                  string    `json:"type"`
	UserID                string    `json:"user_id,omitempty"`
	UserName              string    `json:"user_name,omitempty"`
	UserThumbnail         string    `json:"user_thumbnail,omitempty"`
	OrganizationID        string    `json:"organization_id,omitempty"`
	OrganizationName      string    `json:"organization_name,omitempty"`
	OrganizationSlug      string    `json:"organization_slug,omitempty"`
	OrganizationThumbnail string    `json:"organization_thumbnail,omitempty"`
	Message               string    `json:"message,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

type RequestsResponse struct {
	Requests []AccessRequestDetails `json:"requests"`
	Total    int                    `json:"total"`
}

// ============================================================================
// Users, organizations, memberships
// ============================================================================

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Role         string    `json:"role"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

type UsersResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

type UpdateUserRequest struct {
	Name         string `json:"name,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type Organization struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

type OrganizationsResponse struct {
	Organizations []Organization `json:"organizations"`
	Total         int            `json:"total"`
}

type CreateOrganizationRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type UpdateOrganizationRequest struct {
	Name         string `json:"name,omitempty"`
	Slug         string `json:"slug,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type DeleteOrganizationsRequest struct {
	IDs []string `json:"ids"`
}

// CheckSlugResponse reports slug availability for a resource type.
type CheckSlugResponse struct {
	Available bool `json:"available"`
}

type Membership struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	OrganizationID string    `json:"organization_id"`
	Role           string    `json:"role"`
	Inactive       bool      `json:"inactive"`
	Muted          bool      `json:"muted"`
	CreatedAt      time.Time `json:"created_at"`
	ModifiedAt     time.Time `json:"modified_at"`
}

// MenuEntry is one organization in the caller's navigation menu.
type MenuEntry struct {
	Organization

	Membership Membership `json:"membership"`
}

type MenuResponse struct {
	Organizations []MenuEntry `json:"organizations"`
}

// Member is a user joined with their membership, as the members listing
// returns them. Password material never leaves the server.
type Member struct {
	User

	MembershipID string `json:"membership_id"`
	OrgRole      string `json:"org_role"`
	Inactive     bool   `json:"inactive"`
	Muted        bool   `json:"muted"`
}

type MembersResponse struct {
	Members []Member `json:"members"`
	Total   int      `json:"total"`
}

// UpdateMembershipRequest applies a partial update; nil fields are left
// untouched.
type UpdateMembershipRequest struct {
	Role     *string `json:"role,omitempty"`
	Inactive *bool   `json:"inactive,omitempty"`
	Muted    *bool   `json:"muted,omitempty"`
}

type DeleteMembershipsRequest struct {
	OrganizationID string   `json:"organization_id"`
	UserIDs        []string `json:"user_ids"`
}

// ============================================================================
// System
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies in the readiness
// probe.
type HealthChecks struct {
	Database string `json:"database"`
}

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after,omitempty"`
}
