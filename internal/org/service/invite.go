package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
	orgmail "github.com/quorumhq/quorum/internal/org/mail"
	"github.com/quorumhq/quorum/internal/org/store"
	"github.com/quorumhq/quorum/pkg/cryptox"
	"github.com/quorumhq/quorum/pkg/idx"
	"github.com/quorumhq/quorum/pkg/jwtx"
	"github.com/quorumhq/quorum/pkg/slogx"
)

var (
	ErrForbidden     = errors.New("caller is not allowed to perform this action")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrTokenInvalid  = errors.New("token is invalid")
	ErrTokenExpired  = errors.New("token has expired")
	ErrTokenConsumed = errors.New("token has already been used")
	ErrNotFound      = errors.New("not found")
)

// InviteTTL is how long an invitation stays redeemable.
const InviteTTL = 7 * 24 * time.Hour

// Invitation is the result of minting one invite.
type Invitation struct {
	Email     string
	TokenID   string
	Token     string // compact JWT; never persisted raw
	ExpiresAt time.Time
}

// TokenDetails is what CheckToken reveals about a pending invitation. It
// carries display data only; nothing in it can be used to redeem.
type TokenDetails struct {
	Email            string
	Role             string
	OrganizationName string
	OrganizationSlug string
	ExpiresAt        time.Time
}

type InviteService struct {
	Store  store.Store
	Codec  *jwtx.HS256
	Mailer orgmail.Mailer

	// BaseURL is the public origin used in accept links, e.g.
	// https://quorum.example.com.
	BaseURL string
}

// Invite mints one invitation token per address and emails the accept link.
//
// System-level invites (no organization) require the caller to hold the
// system admin role. Organization invites additionally accept organization
// admins of the target organization.
func (s *InviteService) Invite(
	ctx context.Context,
	actorID string,
	emails []string,
	role string,
	organizationID string,
) ([]Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Resolve the caller and check capability.
	actor, err := s.Store.Users().GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrForbidden
		}
		log.Error("failed to fetch inviting user", slog.Any("error", err))
		return nil, err
	}

	var org domain.Organization
	if organizationID == "" {
		if actor.Role != domain.SystemRoleAdmin {
			log.Warn("system invite attempted without admin role",
				slog.String("actor_id", actorID),
			)
			return nil, ErrForbidden
		}
		if !domain.ValidSystemRole(role) {
			return nil, ErrInvalidRole
		}
	} else {
		org, err = s.Store.Organizations().GetOrganizationByID(ctx, organizationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrNotFound
			}
			log.Error("failed to fetch organization", slog.Any("error", err))
			return nil, err
		}
		if !domain.ValidOrgRole(role) {
			return nil, ErrInvalidRole
		}
		if actor.Role != domain.SystemRoleAdmin {
			membership, err := s.Store.Memberships().GetMembership(ctx, actorID, organizationID)
			if err != nil || membership.Role != domain.OrgRoleAdmin {
				log.Warn("organization invite attempted without org admin role",
					slog.String("actor_id", actorID),
					slog.String("organization_id", organizationID),
				)
				return nil, ErrForbidden
			}
		}
	}

	// 2. Validate the batch up front so the whole call is all-or-nothing.
	if len(emails) == 0 {
		return nil, ErrInvalidEmail
	}
	for i, email := range emails {
		addr, err := mail.ParseAddress(email)
		if err != nil {
			log.Warn("invite attempted with malformed email")
			return nil, ErrInvalidEmail
		}
		emails[i] = strings.ToLower(addr.Address)
	}

	// 3. Mint and persist one token per recipient in a single transaction.
	now := time.Now().UTC()
	invitations := make([]Invitation, 0, len(emails))
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, email := range emails {
			claims := jwtx.NewClaims(email, s.BaseURL, InviteTTL, now)
			claims.Email = email
			claims.Role = role
			claims.OrganizationID = organizationID

			raw, err := s.Codec.Sign(claims)
			if err != nil {
				return err
			}

			token := domain.Token{
				ID:             claims.ID,
				Fingerprint:    cryptox.FingerprintToken(raw),
				Email:          email,
				Role:           role,
				OrganizationID: organizationID,
				CreatedBy:      actorID,
				ExpiresAt:      claims.ExpiresAt.Time,
				CreatedAt:      now,
			}
			if err := tx.Tokens().CreateToken(ctx, token); err != nil {
				log.Error("failed to persist invitation token",
					slog.String("token_id", token.ID),
					slog.Any("error", err),
				)
				return err
			}

			invitations = append(invitations, Invitation{
				Email:     email,
				TokenID:   token.ID,
				Token:     raw,
				ExpiresAt: token.ExpiresAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Dispatch emails after commit. A delivery failure is logged, not
	// surfaced; the token is valid and an admin can resend the link.
	for _, inv := range invitations {
		msg := orgmail.InviteMessage(inv.Email, org.Name, s.BaseURL+"/accept-invite/"+inv.Token)
		if err := s.Mailer.Send(ctx, msg); err != nil {
			log.Error("failed to send invitation email",
				slog.String("token_id", inv.TokenID),
				slog.Any("error", err),
			)
		}
	}

	log.Info("invitations created",
		slog.Int("count", len(invitations)),
		slog.String("role", role),
		slog.String("organization_id", organizationID),
		slog.String("created_by", actorID),
	)

	return invitations, nil
}

// CheckToken validates an invitation token without consuming it.
func (s *InviteService) CheckToken(ctx context.Context, raw string) (TokenDetails, error) {
	_, token, err := s.resolveToken(ctx, raw)
	if err != nil {
		return TokenDetails{}, err
	}

	details := TokenDetails{
		Email:     token.Email,
		Role:      token.Role,
		ExpiresAt: token.ExpiresAt,
	}

	if token.OrganizationID != "" {
		org, err := s.Store.Organizations().GetOrganizationByID(ctx, token.OrganizationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Organization deleted after issuance invalidates the token.
				return TokenDetails{}, ErrTokenInvalid
			}
			return TokenDetails{}, err
		}
		details.OrganizationName = org.Name
		details.OrganizationSlug = org.Slug
	}

	return details, nil
}

// AcceptResult is the outcome of a successful acceptance.
type AcceptResult struct {
	User             domain.User
	OrganizationSlug string // empty for system invites
}

// AcceptInvite redeems a token: consumes it, creates or activates the user
// and, for organization invites, creates the membership. All writes happen in
// one transaction and consumption is a conditional update, so exactly one of
// any concurrent acceptances succeeds.
func (s *InviteService) AcceptInvite(ctx context.Context, raw, name, password string) (AcceptResult, error) {
	log := slogx.FromContext(ctx)

	claims, token, err := s.resolveToken(ctx, raw)
	if err != nil {
		return AcceptResult{}, err
	}

	var orgSlug string
	if token.OrganizationID != "" {
		org, err := s.Store.Organizations().GetOrganizationByID(ctx, token.OrganizationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return AcceptResult{}, ErrTokenInvalid
			}
			return AcceptResult{}, err
		}
		orgSlug = org.Slug
		if !domain.ValidOrgRole(token.Role) {
			return AcceptResult{}, ErrInvalidRole
		}
	} else if !domain.ValidSystemRole(token.Role) {
		return AcceptResult{}, ErrInvalidRole
	}

	// Hash outside the transaction; argon2id is deliberately slow.
	var passwordHash string
	if password != "" {
		passwordHash, err = cryptox.HashPassword(password)
		if err != nil {
			log.Error("failed to hash password", slog.Any("error", err))
			return AcceptResult{}, err
		}
	}

	now := time.Now().UTC()
	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err = tx.Users().GetUserByEmail(ctx, token.Email)
		switch {
		case errors.Is(err, store.ErrNotFound):
			systemRole := domain.SystemRoleUser
			if token.OrganizationID == "" {
				systemRole = token.Role
			}
			user = domain.User{
				ID:           idx.New().String(),
				Email:        token.Email,
				Name:         name,
				PasswordHash: passwordHash,
				Role:         systemRole,
				CreatedAt:    now,
				ModifiedAt:   now,
			}
			if err := tx.Users().CreateUser(ctx, user); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Existing user: set a password only if they never had one.
			if user.PasswordHash == "" && passwordHash != "" {
				if err := tx.Users().UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
					return err
				}
				user.PasswordHash = passwordHash
			}
		}

		// The conditional update is the concurrency gate: losers hit an
		// already-consumed row, fail here and roll everything back.
		if err := tx.Tokens().ConsumeToken(ctx, token.ID, user.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTokenConsumed
			}
			return err
		}

		if token.OrganizationID != "" {
			membership, err := tx.Memberships().GetMembership(ctx, user.ID, token.OrganizationID)
			if errors.Is(err, store.ErrNotFound) {
				membership = domain.Membership{
					ID:             idx.New().String(),
					UserID:         user.ID,
					OrganizationID: token.OrganizationID,
					Role:           token.Role,
					CreatedAt:      now,
					ModifiedAt:     now,
				}
				return tx.Memberships().CreateMembership(ctx, membership)
			}
			if err != nil {
				return err
			}
			// Re-invited existing member: acceptance reactivates the
			// membership and applies the invited role.
			inactive := false
			role := token.Role
			return tx.Memberships().UpdateMembership(ctx, membership.ID, &role, &inactive, nil)
		}
		return nil
	})
	if err != nil {
		return AcceptResult{}, err
	}

	log.Info("invitation accepted",
		slog.String("token_id", claims.ID),
		slog.String("user_id", user.ID),
		slog.String("organization_id", token.OrganizationID),
	)

	return AcceptResult{User: user, OrganizationSlug: orgSlug}, nil
}

// resolveToken verifies the JWT and loads the matching row, folding every
// failure into the token sentinel errors. Signature, fingerprint, expiry and
// consumption are all checked here so check and accept agree.
func (s *InviteService) resolveToken(ctx context.Context, raw string) (jwtx.Claims, domain.Token, error) {
	claims, err := s.Codec.Verify(raw)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return jwtx.Claims{}, domain.Token{}, ErrTokenExpired
		}
		return jwtx.Claims{}, domain.Token{}, ErrTokenInvalid
	}

	token, err := s.Store.Tokens().GetTokenByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Signed but unknown: revoked by deletion or never issued here.
			return jwtx.Claims{}, domain.Token{}, ErrTokenInvalid
		}
		return jwtx.Claims{}, domain.Token{}, err
	}

	if token.Fingerprint != cryptox.FingerprintToken(raw) {
		return jwtx.Claims{}, domain.Token{}, ErrTokenInvalid
	}
	if token.Consumed() {
		return jwtx.Claims{}, domain.Token{}, ErrTokenConsumed
	}
	if token.Expired(time.Now().UTC()) {
		return jwtx.Claims{}, domain.Token{}, ErrTokenExpired
	}

	return claims, token, nil
}
