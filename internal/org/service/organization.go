package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/internal/org/store"
	"github.com/quorumhq/quorum/pkg/idx"
	"github.com/quorumhq/quorum/pkg/slogx"
)

var (
	ErrInvalidName = errors.New("invalid organization name")
	ErrSlugTaken   = errors.New("organization slug already taken")
)

var (
	nonSlugPattern  = regexp.MustCompile(`[^a-z0-9]+`)
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe slug from an organization name.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugPattern.ReplaceAllString(s, "-")
	s = repeatedHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

type OrganizationService struct {
	Store store.Store
}

// Create makes a new organization and enrolls the creator as its admin in
// the same transaction.
func (s *OrganizationService) Create(ctx context.Context, actorID, name, slug, thumbnailURL string) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Organization{}, ErrInvalidName
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return domain.Organization{}, ErrInvalidName
	}

	now := time.Now().UTC()
	org := domain.Organization{
		ID:           idx.New().String(),
		Name:         name,
		Slug:         slug,
		ThumbnailURL: thumbnailURL,
		CreatedAt:    now,
		ModifiedAt:   now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organizations().CreateOrganization(ctx, org); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrSlugTaken
			}
			return err
		}
		membership := domain.Membership{
			ID:             idx.New().String(),
			UserID:         actorID,
			OrganizationID: org.ID,
			Role:           domain.OrgRoleAdmin,
			CreatedAt:      now,
			ModifiedAt:     now,
		}
		return tx.Memberships().CreateMembership(ctx, membership)
	})
	if err != nil {
		if !errors.Is(err, ErrSlugTaken) {
			log.Error("failed to create organization", slog.Any("error", err))
		}
		return domain.Organization{}, err
	}

	log.Info("organization created",
		slog.String("organization_id", org.ID),
		slog.String("slug", org.Slug),
		slog.String("created_by", actorID),
	)
	return org, nil
}

// CheckSlug reports whether slug is still free to claim. Slugs are
// lowercase so the lookup never collides with an id.
func (s *OrganizationService) CheckSlug(ctx context.Context, slug string) (bool, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return false, ErrInvalidName
	}

	_, err := s.Store.Organizations().GetOrganizationByIDOrSlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// Get resolves an organization by id or slug, restricted to members and
// system admins.
func (s *OrganizationService) Get(ctx context.Context, actorID, actorRole, idOrSlug string) (domain.Organization, error) {
	org, err := s.Store.Organizations().GetOrganizationByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organization{}, ErrNotFound
		}
		return domain.Organization{}, err
	}

	if actorRole != domain.SystemRoleAdmin {
		if _, err := s.Store.Memberships().GetMembership(ctx, actorID, org.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Organization{}, ErrForbidden
			}
			return domain.Organization{}, err
		}
	}
	return org, nil
}

// List is admin-only and paginated.
func (s *OrganizationService) List(ctx context.Context, p store.ListParams) ([]domain.Organization, int, error) {
	return s.Store.Organizations().ListOrganizations(ctx, p)
}

// Update mutates name/slug/thumbnail. Requires org admin or system admin.
func (s *OrganizationService) Update(ctx context.Context, actorID, actorRole, idOrSlug, name, slug, thumbnailURL string) (domain.Organization, error) {
	org, err := s.Get(ctx, actorID, actorRole, idOrSlug)
	if err != nil {
		return domain.Organization{}, err
	}
	if err := s.requireOrgAdmin(ctx, actorID, actorRole, org.ID); err != nil {
		return domain.Organization{}, err
	}

	if name != "" {
		org.Name = name
	}
	if slug != "" {
		org.Slug = slug
	}
	if thumbnailURL != "" {
		org.ThumbnailURL = thumbnailURL
	}

	if err := s.Store.Organizations().UpdateOrganization(ctx, org); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Organization{}, ErrSlugTaken
		}
		return domain.Organization{}, err
	}
	return org, nil
}

// Delete removes organizations wholesale. System admin only; memberships go
// with them via FK cascade.
func (s *OrganizationService) Delete(ctx context.Context, actorRole string, ids []string) error {
	if actorRole != domain.SystemRoleAdmin {
		return ErrForbidden
	}
	return s.Store.Organizations().DeleteOrganizations(ctx, ids)
}

func (s *OrganizationService) requireOrgAdmin(ctx context.Context, actorID, actorRole, organizationID string) error {
	if actorRole == domain.SystemRoleAdmin {
		return nil
	}
	membership, err := s.Store.Memberships().GetMembership(ctx, actorID, organizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if membership.Role != domain.OrgRoleAdmin {
		return ErrForbidden
	}
	return nil
}
