package quorumsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Session is an authenticated view of the service, bound to one bearer
// access token. Create one via SDKClient.NewSession.
type Session struct {
	client      *SDKClient
	accessToken string
}

// ListOptions are the shared pagination/sort knobs of listing endpoints.
type ListOptions struct {
	Q      string
	Sort   string
	Order  string
	Limit  int
	Offset int
	Role   string
}

func (o ListOptions) query() string {
	v := url.Values{}
	if o.Q != "" {
		v.Set("q", o.Q)
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.Order != "" {
		v.Set("order", o.Order)
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
		v.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Role != "" {
		v.Set("role", o.Role)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// Me returns the authenticated user.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// Menu returns the organizations the authenticated user belongs to.
func (s *Session) Menu(ctx context.Context) (*MenuResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/menu", nil)
	if err != nil {
		return nil, err
	}

	var menu MenuResponse
	if err := decodeJSON(resp, &menu, http.StatusOK); err != nil {
		return nil, err
	}
	return &menu, nil
}

// Invite mints invitations for a batch of addresses. Admin operation.
func (s *Session) Invite(ctx context.Context, req InviteRequest) (*InviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invite", req)
	if err != nil {
		return nil, err
	}

	var inviteResp InviteResponse
	if err := decodeJSON(resp, &inviteResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &inviteResp, nil
}

// GetRequests pages through recorded access requests. Admin operation.
func (s *Session) GetRequests(ctx context.Context, opts ListOptions) (*RequestsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/requests"+opts.query(), nil)
	if err != nil {
		return nil, err
	}

	var requests RequestsResponse
	if err := decodeJSON(resp, &requests, http.StatusOK); err != nil {
		return nil, err
	}
	return &requests, nil
}

// ListUsers pages through users. Admin operation.
func (s *Session) ListUsers(ctx context.Context, opts ListOptions) (*UsersResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users"+opts.query(), nil)
	if err != nil {
		return nil, err
	}

	var users UsersResponse
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return &users, nil
}

// UpdateUser mutates a user's display fields. Admin or self.
func (s *Session) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/users/"+url.PathEscape(userID), req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user account. Admin or self.
func (s *Session) DeleteUser(ctx context.Context, userID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// CreateOrganization creates an organization; the caller becomes its admin.
func (s *Session) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*Organization, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/organizations", req)
	if err != nil {
		return nil, err
	}

	var org Organization
	if err := decodeJSON(resp, &org, http.StatusCreated); err != nil {
		return nil, err
	}
	return &org, nil
}

// GetOrganization resolves an organization by id or slug.
func (s *Session) GetOrganization(ctx context.Context, idOrSlug string) (*Organization, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/organizations/"+url.PathEscape(idOrSlug), nil)
	if err != nil {
		return nil, err
	}

	var org Organization
	if err := decodeJSON(resp, &org, http.StatusOK); err != nil {
		return nil, err
	}
	return &org, nil
}

// CheckSlug reports whether slug is still available for the given resource
// type, e.g. "ORGANIZATION".
func (s *Session) CheckSlug(ctx context.Context, resourceType, slug string) (*CheckSlugResponse, error) {
	path := fmt.Sprintf("/v1/check-slug/%s/%s", url.PathEscape(resourceType), url.PathEscape(slug))
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var check CheckSlugResponse
	if err := decodeJSON(resp, &check, http.StatusOK); err != nil {
		return nil, err
	}
	return &check, nil
}

// ListMembers pages through an organization's members.
func (s *Session) ListMembers(ctx context.Context, idOrSlug string, opts ListOptions) (*MembersResponse, error) {
	path := fmt.Sprintf("/v1/organizations/%s/members%s", url.PathEscape(idOrSlug), opts.query())
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var members MembersResponse
	if err := decodeJSON(resp, &members, http.StatusOK); err != nil {
		return nil, err
	}
	return &members, nil
}

// UpdateMembership applies a partial membership update.
func (s *Session) UpdateMembership(ctx context.Context, membershipID string, req UpdateMembershipRequest) (*Membership, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/memberships/"+url.PathEscape(membershipID), req)
	if err != nil {
		return nil, err
	}

	var membership Membership
	if err := decodeJSON(resp, &membership, http.StatusOK); err != nil {
		return nil, err
	}
	return &membership, nil
}

// DeleteMemberships bulk-removes users from an organization. Org admin
// operation.
func (s *Session) DeleteMemberships(ctx context.Context, req DeleteMembershipsRequest) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/memberships", req)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
