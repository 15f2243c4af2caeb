package http

import (
	"github.com/quorumhq/quorum/internal/org/domain"
	"github.com/quorumhq/quorum/pkg/quorumsdk"
)

// Wire rendering of domain types. Password hashes never cross this boundary.

func renderUser(u domain.User) quorumsdk.User {
	return quorumsdk.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		ThumbnailURL: u.ThumbnailURL,
		CreatedAt:    u.CreatedAt,
		ModifiedAt:   u.ModifiedAt,
	}
}

func renderUsers(users []domain.User) []quorumsdk.User {
	out := make([]quorumsdk.User, 0, len(users))
	for _, u := range users {
		out = append(out, renderUser(u))
	}
	return out
}

func renderOrganization(o domain.Organization) quorumsdk.Organization {
	return quorumsdk.Organization{
		ID:           o.ID,
		Name:         o.Name,
		Slug:         o.Slug,
		ThumbnailURL: o.ThumbnailURL,
		CreatedAt:    o.CreatedAt,
		ModifiedAt:   o.ModifiedAt,
	}
}

func renderMembership(m domain.Membership) quorumsdk.Membership {
	return quorumsdk.Membership{
		ID:             m.ID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           m.Role,
		Inactive:       m.Inactive,
		Muted:          m.Muted,
		CreatedAt:      m.CreatedAt,
		ModifiedAt:     m.ModifiedAt,
	}
}

func renderMenu(orgs []domain.UserOrganization) []quorumsdk.MenuEntry {
	out := make([]quorumsdk.MenuEntry, 0, len(orgs))
	for _, uo := range orgs {
		out = append(out, quorumsdk.MenuEntry{
			Organization: renderOrganization(uo.Organization),
			Membership:   renderMembership(uo.Membership),
		})
	}
	return out
}

func renderMembers(members []domain.Member) []quorumsdk.Member {
	out := make([]quorumsdk.Member, 0, len(members))
	for _, m := range members {
		out = append(out, quorumsdk.Member{
			User:         renderUser(m.User),
			MembershipID: m.MembershipID,
			OrgRole:      m.OrgRole,
			Inactive:     m.Inactive,
			Muted:        m.Muted,
		})
	}
	return out
}

func renderAccessRequests(reqs []domain.AccessRequestDetails) []quorumsdk.AccessRequestDetails {
	out := make([]quorumsdk.AccessRequestDetails, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, quorumsdk.AccessRequestDetails{
			ID:                    r.ID,
			Email:                 r.Email,
			Type:                  r.Type,
			UserID:                r.UserID,
			UserName:              r.UserName,
			UserThumbnail:         r.UserThumbnail,
			OrganizationID:        r.OrganizationID,
			OrganizationName:      r.OrganizationName,
			OrganizationSlug:      r.OrganizationSlug,
			OrganizationThumbnail: r.OrganizationThumbnail,
			Message:               r.Message,
			CreatedAt:             r.CreatedAt,
		})
	}
	return out
}
