package client

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultAPIBaseURL = "https://api.ring.com"
	DefaultOAuthURL   = "https://oauth.ring.com/oauth/token"

	// Client id the service expects on the refresh grant.
	oauthClientID = "ring_official_android"
)

type RingClient struct {
	HTTP   *resty.Client
	Config ClientConfig
}

type ClientConfig struct {
	APIBaseURL   string
	OAuthURL     string
	RefreshToken string
	HardwareID   string // stable per-install id, required by the oauth endpoint
}

// authPayload matches the JSON body required by the oauth token endpoint.
type authPayload struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	RefreshToken string `json:"refresh_token"`
}

// authResponse captures the bearer token plus the rotated refresh token.
type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

func New(cfg ClientConfig) *RingClient {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.OAuthURL == "" {
		cfg.OAuthURL = DefaultOAuthURL
	}

	r := resty.New()
	r.SetBaseURL(cfg.APIBaseURL)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")

	return &RingClient{
		HTTP:   r,
		Config: cfg,
	}
}

// Authenticate exchanges the refresh token for a bearer token, sets it
// on all future requests for this client instance, and returns the
// rotated refresh token so the caller can persist it. The service may
// invalidate the old token after rotation, so losing the returned value
// means logging in again.
func (c *RingClient) Authenticate() (string, error) {
	payload := authPayload{
		GrantType:    "refresh_token",
		ClientID:     oauthClientID,
		RefreshToken: c.Config.RefreshToken,
	}

	var respData authResponse
	resp, err := c.HTTP.R().
		SetHeader("hardware_id", c.Config.HardwareID).
		SetBody(payload).
		SetResult(&respData).
		Post(c.Config.OAuthURL)

	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return "", fmt.Errorf("token refresh failed: %s", resp.String())
	}

	if respData.AccessToken == "" {
		return "", errors.New("token refresh succeeded but no access token returned")
	}

	c.HTTP.SetAuthToken(respData.AccessToken)

	// The endpoint usually rotates the refresh token; when it does not,
	// hand back the one we already had.
	if respData.RefreshToken == "" {
		return c.Config.RefreshToken, nil
	}
	return respData.RefreshToken, nil
}
