package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", ClassTeamStats, loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errors.New("unexpected loaded value")
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

// Live boxscore polled at 10s and 14s hits the cache; at 25s it refetches.
func TestStore_LiveClassExpiresAfterTenSeconds(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 10, 3, 19, 30, 0, 0, time.UTC)
	clock := &fakeClock{}
	store := NewStoreWithClock(clock.Now)

	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return calls.Load(), nil
	}
	key := Key("/games/X/stats")

	for _, at := range []time.Duration{10 * time.Second, 14 * time.Second} {
		clock.Set(base.Add(at))
		if _, err := store.GetOrLoad(context.Background(), key, ClassGameLive, loader); err != nil {
			t.Fatalf("load at %s: %v", at, err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single upstream call within TTL, got %d", got)
	}

	clock.Set(base.Add(25 * time.Second))
	if _, err := store.GetOrLoad(context.Background(), key, ClassGameLive, loader); err != nil {
		t.Fatalf("load at 25s: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected second upstream call after expiry, got %d", got)
	}
}

func TestStore_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var calls atomic.Int32
	failing := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, errors.New("origin unavailable")
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(context.Background(), "k", ClassTeamDetails, failing); err == nil {
			t.Fatalf("expected loader error")
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("failed loads must retry, loader called %d times", got)
	}
	if store.Len() != 0 {
		t.Fatalf("expected no cached entries, got %d", store.Len())
	}
}

func TestLoad_Typed(t *testing.T) {
	t.Parallel()

	store := NewStore()
	got, err := Load(context.Background(), store, Key("/standings", map[string]string{"seasonId": "2025", "region": "North"}), ClassStandings,
		func(context.Context) ([]int, error) { return []int{1, 2}, nil })
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected value %v", got)
	}
}

func TestKey_SortsMapParams(t *testing.T) {
	t.Parallel()

	a := Key("/games/recent", map[string]string{"slotSize": "10", "origin": "S"})
	b := Key("/games/recent", map[string]string{"origin": "S", "slotSize": "10"})
	if a != b {
		t.Fatalf("expected equal keys, got %q and %q", a, b)
	}
	if Key("/teams", 1, "2025") == Key("/teams", 2, "2025") {
		t.Fatalf("expected different keys for different team ids")
	}
}
