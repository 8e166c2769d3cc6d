// Package cache provides a small in-memory TTL cache for remote reference
// data, with singleflight-protected read-through loading.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Sentinel errors for cache operations.
var (
	// ErrNotFound is returned when a key does not exist or has expired.
	ErrNotFound = errors.New("cache: entry not found")
)

type entry[V any] struct {
	value     V
	expiresAt time.Time // zero value = never expires
}

func (e entry[V]) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// Memory is an in-memory cache with TTL-based expiration. Expired entries
// are dropped lazily on access; the working set here is small reference
// data (categories, host lists), so no janitor goroutine is needed.
type Memory[V any] struct {
	mu         sync.Mutex
	items      map[string]entry[V]
	defaultTTL time.Duration
	group      singleflight.Group
}

// NewMemory creates a new in-memory cache. A zero defaultTTL means entries
// never expire unless Set is called with a positive TTL.
func NewMemory[V any](defaultTTL time.Duration) *Memory[V] {
	return &Memory[V]{
		items:      make(map[string]entry[V]),
		defaultTTL: defaultTTL,
	}
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist or has expired.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	if e.expired() {
		delete(m.items, key)
		var zero V
		return zero, ErrNotFound
	}
	return e.value, nil
}

// Set stores a value. TTL semantics: positive = expires after duration,
// zero = use the cache's default TTL, negative = never expires.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	if ttl == 0 {
		ttl = m.defaultTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = entry[V]{value: value, expiresAt: expiresAt}
	return nil
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Clear removes all entries.
func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]entry[V])
	return nil
}

// GetOrLoad retrieves a value, calling load to compute it on a miss.
// Concurrent callers with the same key share a single load call via
// singleflight, so a cold cache cannot stampede the remote API. A failed
// load is not cached.
func (m *Memory[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if v, err := m.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		// Re-check under the flight: another caller may have loaded it.
		if v, err := m.Get(ctx, key); err == nil {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		_ = m.Set(ctx, key, v, 0)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}
