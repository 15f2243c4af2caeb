package quorumsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient is a client for the Quorum organization service. It provides the
// unauthenticated operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession creates an authenticated session from an existing bearer access
// token. The token is minted by the identity provider sharing the service's
// issuer secret.
func (c *SDKClient) NewSession(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// CheckToken validates an invitation token without consuming it. Public
// endpoint.
func (c *SDKClient) CheckToken(ctx context.Context, token string) (*CheckTokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/check-token/"+url.PathEscape(token), nil)
	if err != nil {
		return nil, err
	}

	var checkResp CheckTokenResponse
	if err := decodeJSON(resp, &checkResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &checkResp, nil
}

// AcceptInvite redeems an invitation token. Public endpoint.
func (c *SDKClient) AcceptInvite(ctx context.Context, token string, req AcceptInviteRequest) (*AcceptInviteResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/accept-invite/"+url.PathEscape(token), req)
	if err != nil {
		return nil, err
	}

	var acceptResp AcceptInviteResponse
	if err := decodeJSON(resp, &acceptResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &acceptResp, nil
}

// SubmitActionRequest records an access request (organization, waitlist,
// newsletter or contact). Public endpoint.
func (c *SDKClient) SubmitActionRequest(ctx context.Context, req ActionRequest) (*ActionRequestResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/action-request", req)
	if err != nil {
		return nil, err
	}

	var actionResp ActionRequestResponse
	if err := decodeJSON(resp, &actionResp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &actionResp, nil
}

// Livez checks service liveness.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
