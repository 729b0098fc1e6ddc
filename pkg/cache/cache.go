// Package cache is the read-through cache behind every dashboard view. Each
// entry is keyed by resource type; a mutation invalidates the whole resource
// so every view showing it refetches, instead of each screen re-calling its
// own fetch function.
package cache

import (
	"context"
	"sync"
	"time"
)

const (
	ResourceBookings      = "bookings"
	ResourceProperties    = "properties"
	ResourceWishlist      = "wishlist"
	ResourcePayments      = "payments"
	ResourceReviews       = "reviews"
	ResourceNotifications = "notifications"
	ResourceAgents        = "agent-applications"
)

type entry struct {
	value    any
	fetched  time.Time
	resource string
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

func New(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (s *Store) get(resource, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[resource+"/"+key]
	if !ok || e.resource != resource {
		return nil, false
	}
	if s.ttl > 0 && time.Since(e.fetched) > s.ttl {
		return nil, false
	}
	return e.value, true
}

func (s *Store) put(resource, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[resource+"/"+key] = entry{
		value:    value,
		fetched:  time.Now(),
		resource: resource,
	}
}

// Clear drops everything. Used when the session ends: cached views belong
// to the user who fetched them.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

// Invalidate evicts every entry belonging to the resource.
func (s *Store) Invalidate(resource string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if e.resource == resource {
			delete(s.entries, key)
		}
	}
}

// Load returns the cached value under resource/key or runs the loader and
// caches its result. Loader errors are never cached.
func Load[T any](ctx context.Context, s *Store, resource, key string, loader func(context.Context) (T, error)) (T, error) {
	if cached, ok := s.get(resource, key); ok {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	value, err := loader(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	s.put(resource, key, value)
	return value, nil
}
