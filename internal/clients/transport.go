package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Response is what every adapter hands back: upstream status, content type and
// raw body, untouched.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) IsJSON() bool {
	return strings.Contains(strings.ToLower(r.ContentType), "application/json")
}

// Adapter performs one GET of an upstream URL through some route to the API.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, upstreamURL string) (*Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}
	return &http.Client{Timeout: timeout}
}

func doGet(ctx context.Context, client *http.Client, target string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MAX_BODY_BYTES))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// DirectAdapter talks to the upstream API without any relay.
type DirectAdapter struct {
	client *http.Client
}

func NewDirectAdapter(timeout time.Duration) *DirectAdapter {
	return &DirectAdapter{client: newHTTPClient(timeout)}
}

func (d *DirectAdapter) Name() string { return "direct" }

func (d *DirectAdapter) Fetch(ctx context.Context, upstreamURL string) (*Response, error) {
	return doGet(ctx, d.client, upstreamURL)
}

// RelayAdapter forwards through a pass-through relay that takes the upstream
// URL as a query parameter and echoes status, body and content type.
//
// The template either contains a {url} placeholder, or the encoded upstream
// URL is appended as the "url" query parameter.
type RelayAdapter struct {
	template string
	client   *http.Client
}

func NewRelayAdapter(template string, timeout time.Duration) *RelayAdapter {
	return &RelayAdapter{template: template, client: newHTTPClient(timeout)}
}

func (r *RelayAdapter) Name() string {
	if u, err := url.Parse(r.template); err == nil && u.Host != "" {
		return "relay:" + u.Host
	}
	return "relay"
}

func (r *RelayAdapter) Fetch(ctx context.Context, upstreamURL string) (*Response, error) {
	return doGet(ctx, r.client, r.relayURL(upstreamURL))
}

func (r *RelayAdapter) relayURL(upstreamURL string) string {
	escaped := url.QueryEscape(upstreamURL)
	if strings.Contains(r.template, "{url}") {
		return strings.ReplaceAll(r.template, "{url}", escaped)
	}
	sep := "?"
	if strings.Contains(r.template, "?") {
		sep = "&"
	}
	return r.template + sep + "url=" + escaped
}
