package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

const (
	VALKEY_KEY_PREFIX = "redlytics:activity:"
	VALKEY_RETRIES    = 3
	VALKEY_RETRY_WAIT = 250 * time.Millisecond
)

type ValkeyOptions struct {
	Address  string
	Password string
	TLS      bool
	// DisableCache turns off client side caching, needed for RESP2 servers.
	DisableCache bool
}

func (o ValkeyOptions) clientOption() valkey.ClientOption {
	opts := valkey.ClientOption{
		InitAddress:      []string{o.Address},
		Password:         o.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
		DisableCache:     o.DisableCache,
	}
	if o.TLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}
	return opts
}

// ValkeyStore keeps activity sets as JSON strings with a server side expiry,
// so the cache can be shared by several processes.
type ValkeyStore struct {
	opts ValkeyOptions

	mu     sync.Mutex
	client valkey.Client
}

func NewValkeyStore(opts ValkeyOptions) (*ValkeyStore, error) {
	client, err := connectValkey(opts)
	if err != nil {
		return nil, err
	}
	slog.Info("[ValkeyStore] Successfully connected to valkey",
		slog.String("address", opts.Address))
	return &ValkeyStore{opts: opts, client: client}, nil
}

func connectValkey(opts ValkeyOptions) (valkey.Client, error) {
	client, err := valkey.NewClient(opts.clientOption())
	if err != nil {
		return nil, fmt.Errorf("[ValkeyStore] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyStore] failed to ping Valkey: %w", err)
	}
	return client, nil
}

func (s *ValkeyStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client.Close()
}

func (s *ValkeyStore) valkeyClient() valkey.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

func (s *ValkeyStore) recreateClient() {
	s.mu.Lock()
	defer s.mu.Unlock()

	slog.Warn("[ValkeyStore] Attempting to recreate Valkey client...")
	client, err := connectValkey(s.opts)
	if err != nil {
		slog.Error("[ValkeyStore] Recreate failed",
			slog.String("error", err.Error()))
		return
	}
	s.client.Close()
	s.client = client
	slog.Info("[ValkeyStore] Successfully reconnected to valkey")
}

func valkeyKey(key string) string {
	return VALKEY_KEY_PREFIX + key
}

func (s *ValkeyStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	res := s.doWithRetry(ctx, func(c valkey.Client) valkey.Completed {
		return c.B().Get().Key(valkeyKey(key)).Build()
	})

	raw, err := res.AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("[ValkeyStore] get %s: %w", key, err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("[ValkeyStore] decode %s: %w", key, err)
	}
	return entry, true, nil
}

func (s *ValkeyStore) Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("[ValkeyStore] encode %s: %w", key, err)
	}

	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	res := s.doWithRetry(ctx, func(c valkey.Client) valkey.Completed {
		return c.B().Set().Key(valkeyKey(key)).Value(valkey.BinaryString(payload)).ExSeconds(seconds).Build()
	})
	if err := res.Error(); err != nil {
		return fmt.Errorf("[ValkeyStore] set %s: %w", key, err)
	}
	return nil
}

func (s *ValkeyStore) Delete(ctx context.Context, key string) error {
	res := s.doWithRetry(ctx, func(c valkey.Client) valkey.Completed {
		return c.B().Del().Key(valkeyKey(key)).Build()
	})
	if err := res.Error(); err != nil {
		return fmt.Errorf("[ValkeyStore] delete %s: %w", key, err)
	}
	return nil
}

// doWithRetry rebuilds the command on every attempt since a recreated client
// cannot run commands built by the old one.
func (s *ValkeyStore) doWithRetry(ctx context.Context, build func(valkey.Client) valkey.Completed) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < VALKEY_RETRIES; i++ {
		client := s.valkeyClient()
		result = client.Do(ctx, build(client))
		err := result.Error()
		if err == nil || valkey.IsValkeyNil(err) || ctx.Err() != nil {
			break
		}

		slog.Warn("[ValkeyStore] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))

		if isConnectionError(err) {
			s.recreateClient()
		}

		select {
		case <-ctx.Done():
			return result
		case <-time.After(VALKEY_RETRY_WAIT):
		}
	}
	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
