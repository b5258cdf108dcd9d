package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"golang.org/x/time/rate"

	"github.com/spacesedan/redlytics/internal/failure"
	"github.com/spacesedan/redlytics/internal/models"
)

// ErrNoAdapters means the configuration produced an empty chain. It carries no
// failure kind and is never retried.
var ErrNoAdapters = errors.New("no transport adapters configured")

// Chain tries each adapter in order for a single logical request and stops at
// the first one that returns a parseable JSON success. Adapters are never
// tried in parallel.
type Chain struct {
	adapters []Adapter
	limiter  *rate.Limiter
}

// NewChain builds a chain. limiter may be nil; when set, every adapter attempt
// waits on it first.
func NewChain(limiter *rate.Limiter, adapters ...Adapter) *Chain {
	return &Chain{adapters: adapters, limiter: limiter}
}

func (c *Chain) Adapters() []string {
	names := make([]string, 0, len(c.adapters))
	for _, a := range c.adapters {
		names = append(names, a.Name())
	}
	return names
}

type attempt struct {
	adapter   string
	status    int
	network   bool
	malformed bool
	reason    string
	err       error
}

// GetJSON fetches upstreamURL and decodes the body into out. When every
// adapter fails the returned error is a *failure.Error carrying the most
// specific kind observed across the attempts.
func (c *Chain) GetJSON(ctx context.Context, upstreamURL string, out any) error {
	if len(c.adapters) == 0 {
		return ErrNoAdapters
	}

	attempts := make([]attempt, 0, len(c.adapters))
	for _, adapter := range c.adapters {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("rate limiter: %w", err)
			}
		}

		at := c.try(ctx, adapter, upstreamURL, out)
		if at.err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		slog.Debug("[TransportChain] Adapter failed, trying next",
			slog.String("adapter", at.adapter),
			slog.Int("status", at.status),
			slog.String("error", at.err.Error()))
		attempts = append(attempts, at)
	}

	return summarize(attempts)
}

func (c *Chain) try(ctx context.Context, adapter Adapter, upstreamURL string, out any) attempt {
	at := attempt{adapter: adapter.Name()}

	resp, err := adapter.Fetch(ctx, upstreamURL)
	if err != nil {
		at.network = true
		at.err = fmt.Errorf("%s: %w", at.adapter, err)
		return at
	}
	at.status = resp.StatusCode

	if !resp.OK() {
		var apiErr models.ErrorResponse
		if json.Unmarshal(resp.Body, &apiErr) == nil {
			at.reason = strings.ToLower(apiErr.Reason)
		}
		at.err = fmt.Errorf("%s: upstream status %d", at.adapter, resp.StatusCode)
		return at
	}

	if !resp.IsJSON() {
		at.malformed = true
		at.err = fmt.Errorf("%s: content type %q is not JSON", at.adapter, resp.ContentType)
		return at
	}

	if err := decodeInto(resp.Body, out); err != nil {
		at.malformed = true
		at.err = fmt.Errorf("%s: decode body: %w", at.adapter, err)
		return at
	}

	return at
}

// decodeInto unmarshals body into a zero value of out's type and copies it over
// out only on success, so a failed attempt leaves nothing behind.
func decodeInto(body []byte, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &json.InvalidUnmarshalError{Type: reflect.TypeOf(out)}
	}
	fresh := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(body, fresh.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}

func isBlockedReason(reason string) bool {
	switch reason {
	case "private", "suspended", "banned":
		return true
	}
	return false
}

func summarize(attempts []attempt) error {
	errs := make([]error, 0, len(attempts))
	allNetwork := true
	var malformed bool
	var lastStatus int
	for _, at := range attempts {
		errs = append(errs, at.err)
		if !at.network {
			allNetwork = false
		}
		if at.malformed {
			malformed = true
		}
		if at.status != 0 {
			lastStatus = at.status
		}
	}
	joined := errors.Join(errs...)

	for _, at := range attempts {
		if at.status == http.StatusNotFound {
			return &failure.Error{Kind: failure.NotFound, Status: at.status, Err: joined}
		}
	}
	for _, at := range attempts {
		if isBlockedReason(at.reason) {
			return &failure.Error{Kind: failure.Forbidden, Status: at.status, Err: joined}
		}
	}

	switch {
	case allNetwork:
		return &failure.Error{Kind: failure.NetworkUnreachable, Err: joined}
	case malformed:
		return &failure.Error{Kind: failure.MalformedData, Status: lastStatus, Err: joined}
	default:
		return &failure.Error{Kind: failure.UpstreamUnavailable, Status: lastStatus, Err: joined}
	}
}
