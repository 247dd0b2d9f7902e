package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"webmall/internal/pkg/config"
	"webmall/internal/pkg/errs"
)

var (
	ErrInvalidCredentials  = errs.New("invalid email or password")
	ErrProviderUnavailable = errs.New("identity provider unavailable")
)

// TokenPair is the provider's password-grant response.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// Client talks to the external identity provider. Passwords are forwarded
// verbatim and never stored or checked locally.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.IdentityConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// PasswordGrant exchanges credentials for a token pair. A 400 from the
// provider means bad credentials; anything else unexpected is treated as
// provider unavailability.
func (c *Client) PasswordGrant(ctx context.Context, email, password string) (*TokenPair, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode token request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/token?grant_type=password", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "token request failed"), ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, ErrInvalidCredentials
	default:
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, errs.Mark(errs.New("unexpected provider status "+resp.Status), ErrProviderUnavailable)
	}

	var pair TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return nil, errs.Wrap(err, "failed to decode token response")
	}
	return &pair, nil
}
