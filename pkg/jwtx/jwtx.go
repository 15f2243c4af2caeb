// Package jwtx wraps github.com/golang-jwt/jwt/v5 with the small, typed
// surface the service needs: HS256 signing with a shared issuer secret and
// verification that maps library failures onto stable sentinel errors.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quorumhq/quorum/pkg/idx"
)

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrIssuer     = errors.New("jwtx: issuer mismatch")
)

// Claims are the token claims used across the service. Invitation tokens
// carry Email/Role/OrganizationID; bearer access tokens carry Subject (user
// id) and Role. Fields are additive so both shapes share one struct.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the invited address for invitation tokens.
	Email string `json:"email,omitempty"`

	// Role is the role granted on redemption (invite tokens) or the
	// caller's system role (access tokens).
	Role string `json:"role,omitempty"`

	// OrganizationID scopes an invitation to one organization. Empty for
	// system-level invites.
	OrganizationID string `json:"organization_id,omitempty"`
}

// NewClaims builds minimally-correct claims with a fresh ULID jti. The jti
// doubles as the primary key of the persisted token row.
func NewClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
	}
}

// ValidateExpiry ensures the token has not expired (exp) and is not used
// before it becomes valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrMalformed
	}
	return nil
}

// Signer signs claims into a compact JWT.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a compact JWT and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a shared symmetric secret. It
// implements both Signer and Verifier.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 returns an HS256 codec bound to the given secret and expected
// issuer. An empty issuer disables issuer checking.
func NewHS256(secret []byte, issuer string) *HS256 {
	return &HS256{secret: secret, issuer: issuer}
}

func (h *HS256) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(h.secret)
}

func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSig
		}
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrInvalidSig):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}

	if h.issuer != "" && claims.Issuer != h.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}
