package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// OAuthAdapter sends requests to the authenticated API host using an
// application-only token. It is the most reliable route when credentials
// exist, so it goes first in the chain.
type OAuthAdapter struct {
	Config  *clientcredentials.Config
	baseURL string
	timeout time.Duration

	mu     sync.Mutex
	client *http.Client
}

func NewOAuthAdapter(clientID, clientSecret string, timeout time.Duration) *OAuthAdapter {
	oauthConf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     REDDIT_AUTH_URL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	a := &OAuthAdapter{
		Config:  oauthConf,
		baseURL: REDDIT_OAUTH_URL,
		timeout: timeout,
	}
	a.RefreshClient()
	return a
}

func (a *OAuthAdapter) Name() string { return "oauth" }

// RefreshClient drops the cached token source so the next request
// authenticates from scratch.
func (a *OAuthAdapter) RefreshClient() {
	base := newHTTPClient(a.timeout)
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	client := a.Config.Client(ctx)
	client.Timeout = base.Timeout

	a.mu.Lock()
	a.client = client
	a.mu.Unlock()
}

func (a *OAuthAdapter) httpClient() *http.Client {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.client
}

func (a *OAuthAdapter) Fetch(ctx context.Context, upstreamURL string) (*Response, error) {
	target, err := a.rewrite(upstreamURL)
	if err != nil {
		return nil, err
	}

	resp, err := doGet(ctx, a.httpClient(), target)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		slog.Warn("[OAuthAdapter] Token rejected - Refreshing and Retrying...")
		a.RefreshClient()
		return doGet(ctx, a.httpClient(), target)
	}
	return resp, nil
}

// rewrite moves a public API URL onto the OAuth host, keeping path and query.
func (a *OAuthAdapter) rewrite(upstreamURL string) (string, error) {
	u, err := url.Parse(upstreamURL)
	if err != nil {
		return "", fmt.Errorf("[OAuthAdapter] Failed to parse URL: %w", err)
	}
	base, err := url.Parse(a.baseURL)
	if err != nil {
		return "", fmt.Errorf("[OAuthAdapter] Failed to parse base URL: %w", err)
	}
	base.Path = u.Path
	base.RawQuery = u.RawQuery
	return base.String(), nil
}
