package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/hoopscout/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is the process-wide memo shared by the upstream client and the image
// pipeline. Writes take the exclusive lock; expired entries are dropped on read.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	flight  resilience.Group[any]
	now     func() time.Time
}

func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

func NewStoreWithClock(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		entries: make(map[string]entry),
		now:     now,
	}
}

// Key joins an endpoint with its significant parameters. Map parameters are
// sorted so equal queries produce equal keys.
func Key(endpoint string, params ...any) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(endpoint))
	for _, p := range params {
		b.WriteByte('|')
		switch v := p.(type) {
		case map[string]string:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for i, k := range keys {
				if i > 0 {
					b.WriteByte('&')
				}
				b.WriteString(k + "=" + v[k])
			}
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && current.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores value for ttl. Last writer wins; a non-positive ttl is a no-op.
func (s *Store) Set(_ context.Context, key string, value any, ttl time.Duration) {
	if key == "" || ttl <= 0 {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value or runs loader once for concurrent
// callers. Loader errors are returned but never stored.
func (s *Store) GetOrLoad(ctx context.Context, key string, class Class, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" || class.TTL() <= 0 {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded, class.TTL())
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Load is the typed form of GetOrLoad.
func Load[T any](ctx context.Context, s *Store, key string, class Class, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if s == nil {
		return loader(ctx)
	}
	out, err := s.GetOrLoad(ctx, key, class, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %q has type %T", key, out)
	}
	return typed, nil
}
