package domain

import "time"

// Token is the persisted side of an invitation token. The signed JWT the
// invitee receives carries the same data; this row exists so a token can be
// consumed exactly once and revoked by deletion. ID equals the JWT's jti.
type Token struct {
	ID             string
	Fingerprint    string // sha256 of the compact JWT, never the raw token
	Email          string
	Role           string
	OrganizationID string // empty for system invites
	CreatedBy      string
	ExpiresAt      time.Time
	ConsumedAt     *time.Time
	ConsumedBy     string
	CreatedAt      time.Time
}

// Consumed reports whether the token has already been redeemed.
func (t Token) Consumed() bool { return t.ConsumedAt != nil }

// Expired reports whether the token is past its expiry at the given time.
func (t Token) Expired(now time.Time) bool { return now.After(t.ExpiresAt) }
