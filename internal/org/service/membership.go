package service

import (
	"context"
	"errors"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
)

type MembershipService struct {
	Store store.Store
}

// Menu returns every organization the caller belongs to, membership
// attached, for the client navigation menu.
func (s *MembershipService) Menu(ctx context.Context, actorID string) ([]domain.UserOrganization, error) {
	return s.Store.Memberships().ListUserOrganizations(ctx, actorID)
}

// ListMembers pages through an organization's members. Restricted to members
// of the organization and system admins.
func (s *MembershipService) ListMembers(ctx context.Context, actorID, actorRole, organizationID string, p store.ListParams, role string) ([]domain.Member, int, error) {
	if actorRole != domain.SystemRoleAdmin {
		if _, err := s.Store.Memberships().GetMembership(ctx, actorID, organizationID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, 0, ErrForbidden
			}
			return nil, 0, err
		}
	}
	return s.Store.Memberships().ListMembers(ctx, organizationID, p, role)
}

// Update applies a partial membership update. Role changes require an org
// admin (or system admin); inactive/muted may also be set by the member
// themselves.
func (s *MembershipService) Update(ctx context.Context, actorID, actorRole, membershipID string, role *string, inactive, muted *bool) (domain.Membership, error) {
	membership, err := s.Store.Memberships().GetMembershipByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrNotFound
		}
		return domain.Membership{}, err
	}

	isSelf := membership.UserID == actorID
	isAdmin, err := s.isOrgAdmin(ctx, actorID, actorRole, membership.OrganizationID)
	if err != nil {
		return domain.Membership{}, err
	}

	if role != nil {
		if !isAdmin {
			return domain.Membership{}, ErrForbidden
		}
		if !domain.ValidOrgRole(*role) {
			return domain.Membership{}, ErrInvalidRole
		}
	}
	if !isAdmin && !isSelf {
		return domain.Membership{}, ErrForbidden
	}

	if err := s.Store.Memberships().UpdateMembership(ctx, membershipID, role, inactive, muted); err != nil {
		return domain.Membership{}, err
	}
	return s.Store.Memberships().GetMembershipByID(ctx, membershipID)
}

// Remove bulk-removes users from an organization. Org admin or system admin.
func (s *MembershipService) Remove(ctx context.Context, actorID, actorRole, organizationID string, userIDs []string) error {
	isAdmin, err := s.isOrgAdmin(ctx, actorID, actorRole, organizationID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrForbidden
	}
	return s.Store.Memberships().DeleteMemberships(ctx, organizationID, userIDs)
}

func (s *MembershipService) isOrgAdmin(ctx context.Context, actorID, actorRole, organizationID string) (bool, error) {
	if actorRole == domain.SystemRoleAdmin {
		return true, nil
	}
	membership, err := s.Store.Memberships().GetMembership(ctx, actorID, organizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return membership.Role == domain.OrgRoleAdmin, nil
}
