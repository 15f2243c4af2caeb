package domain

import "time"

// Closed set of access-request types. Anything else is a validation error.
const (
	RequestTypeOrganization = "ORGANIZATION_REQUEST"
	RequestTypeWaitlist     = "WAITLIST_REQUEST"
	RequestTypeNewsletter   = "NEWSLETTER_REQUEST"
	RequestTypeContact      = "CONTACT_REQUEST"
)

// ValidRequestType reports whether t is one of the four request types.
func ValidRequestType(t string) bool {
	switch t {
	case RequestTypeOrganization, RequestTypeWaitlist, RequestTypeNewsletter, RequestTypeContact:
		return true
	}
	return false
}

// AccessRequest records an unauthenticated expression of interest (join an
// organization, waitlist, newsletter, contact). Append-only: rows are never
// mutated, and repeated submissions from the same email are all retained for
// downstream admin triage.
type AccessRequest struct {
	ID             string
	Email          string
	Type           string
	UserID         string // optional
	OrganizationID string // optional
	Message        string // optional
	CreatedAt      time.Time
}

// AccessRequestDetails is an AccessRequest joined with display fields of the
// referenced user and organization, as the admin listing returns them.
type AccessRequestDetails struct {
	AccessRequest

	UserName              string
	UserThumbnail         string
	OrganizationName      string
	OrganizationSlug      string
	OrganizationThumbnail string
}
