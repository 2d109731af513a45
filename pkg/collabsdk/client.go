package collabsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Connected collaboration service.
// It covers unauthenticated operations and creates authenticated Sessions.
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

// Signup registers a new member account.
func (c *SDKClient) Signup(ctx context.Context, handle, displayName, password string) (MemberResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/auth/signup", SignupRequest{
		Handle:      handle,
		DisplayName: displayName,
		Password:    password,
	})
	if err != nil {
		return MemberResponse{}, err
	}

	var member MemberResponse
	if err := decodeJSON(resp, &member, http.StatusCreated); err != nil {
		return MemberResponse{}, err
	}
	return member, nil
}

// Login exchanges credentials for an authenticated Session.
func (c *SDKClient) Login(ctx context.Context, handle, password string) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/auth/login", LoginRequest{
		Handle:   handle,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var login LoginResponse
	if err := decodeJSON(resp, &login, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{
		client:      c,
		AccessToken: login.AccessToken,
		Member:      login.Member,
	}, nil
}

// Livez checks the liveness endpoint.
func (c *SDKClient) Livez(ctx context.Context) (HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return HealthResponse{}, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return HealthResponse{}, err
	}
	return health, nil
}

// Readyz checks the readiness endpoint, which includes database health.
func (c *SDKClient) Readyz(ctx context.Context) (HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return HealthResponse{}, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return HealthResponse{}, err
	}
	return health, nil
}
