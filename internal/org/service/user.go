package service

import (
	"context"
	"errors"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
)

type UserService struct {
	Store store.Store
}

// Get returns one user. Admins can fetch anyone; everyone can fetch
// themselves.
func (s *UserService) Get(ctx context.Context, actorID, actorRole, userID string) (domain.User, error) {
	if actorRole != domain.SystemRoleAdmin && actorID != userID {
		return domain.User{}, ErrForbidden
	}
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// List is admin-only and paginated. Q filters email and name; role narrows
// to one system role.
func (s *UserService) List(ctx context.Context, p store.ListParams, role string) ([]domain.User, int, error) {
	if role != "" && !domain.ValidSystemRole(role) {
		return nil, 0, ErrInvalidRole
	}
	return s.Store.Users().ListUsers(ctx, p, role)
}

// Update mutates display fields. Admin or self.
func (s *UserService) Update(ctx context.Context, actorID, actorRole, userID, name, thumbnailURL string) (domain.User, error) {
	if actorRole != domain.SystemRoleAdmin && actorID != userID {
		return domain.User{}, ErrForbidden
	}
	if err := s.Store.Users().UpdateUser(ctx, userID, name, thumbnailURL); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}

// Delete removes a user account. Admin or self; memberships cascade.
func (s *UserService) Delete(ctx context.Context, actorID, actorRole, userID string) error {
	if actorRole != domain.SystemRoleAdmin && actorID != userID {
		return ErrForbidden
	}
	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
