package domain

import "time"

// UserOrganization is an organization joined with the caller's membership,
// as the menu endpoint returns them.
type UserOrganization struct {
	Organization

	Membership Membership
}

type Organization struct {
	ID           string
	Name         string
	Slug         string // unique, URL-facing identifier
	ThumbnailURL string
	CreatedAt    time.Time
	ModifiedAt   time.Time
}
