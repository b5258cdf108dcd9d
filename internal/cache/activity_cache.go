// Package cache memoizes assembled activity sets per user for a short window
// so repeated analyses do not hit the upstream API again.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/spacesedan/redlytics/internal/models"
)

type FetchFunc func(ctx context.Context) (models.RawActivitySet, error)

type ActivityCache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group
}

type Option func(*ActivityCache)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *ActivityCache) { c.now = now }
}

func New(store Store, ttl time.Duration, opts ...Option) *ActivityCache {
	if store == nil {
		store = NewMemoryStore()
	}
	c := &ActivityCache{store: store, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func Key(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Lookup returns the cached set when it is younger than the TTL. Stale entries
// are evicted here.
func (c *ActivityCache) Lookup(ctx context.Context, username string) (models.RawActivitySet, bool) {
	key := Key(username)
	entry, ok, err := c.store.Get(ctx, key)
	if err != nil {
		slog.Warn("[ActivityCache] Lookup failed, treating as miss",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return models.RawActivitySet{}, false
	}
	if !ok {
		return models.RawActivitySet{}, false
	}

	if c.now().Sub(entry.StoredAt) >= c.ttl {
		if err := c.store.Delete(ctx, key); err != nil {
			slog.Warn("[ActivityCache] Failed to evict stale entry",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return models.RawActivitySet{}, false
	}
	return entry.Value, true
}

// Put overwrites whatever is cached for username. Failures are logged only.
func (c *ActivityCache) Put(ctx context.Context, username string, set models.RawActivitySet) {
	key := Key(username)
	entry := Entry{StoredAt: c.now(), Value: set}
	if err := c.store.Set(ctx, key, entry, c.ttl); err != nil {
		slog.Warn("[ActivityCache] Failed to store activity set",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// GetOrFetch returns a fresh cached set or runs fetch and caches its result.
// Concurrent misses for the same user share a single fetch, which runs with
// the context of the caller that started it. The bool reports a cache hit.
func (c *ActivityCache) GetOrFetch(ctx context.Context, username string, fetch FetchFunc) (models.RawActivitySet, bool, error) {
	if set, ok := c.Lookup(ctx, username); ok {
		slog.Debug("[ActivityCache] Cache hit", slog.String("username", username))
		return set, true, nil
	}

	key := Key(username)
	v, err, shared := c.group.Do(key, func() (any, error) {
		set, err := fetch(ctx)
		if err != nil {
			return models.RawActivitySet{}, err
		}
		c.Put(ctx, username, set)
		return set, nil
	})
	if shared {
		slog.Debug("[ActivityCache] Joined in-flight fetch", slog.String("key", key))
	}
	if err != nil {
		return models.RawActivitySet{}, false, err
	}
	return v.(models.RawActivitySet), false, nil
}
