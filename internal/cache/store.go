package cache

import (
	"context"
	"sync"
	"time"

	"github.com/spacesedan/redlytics/internal/models"
)

// Entry is one cached activity set and the time it was stored.
type Entry struct {
	StoredAt time.Time             `json:"stored_at"`
	Value    models.RawActivitySet `json:"value"`
}

// Store is the backing storage behind ActivityCache. Freshness is decided by
// the cache, not the store; ttl is a hint a store may use to expire keys on
// its own.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore keeps entries in process memory. Stale entries are only removed
// when the cache looks them up.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	return e, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, entry Entry, _ time.Duration) error {
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
