package ratelimit

import (
	"sync"
	"time"

	"webmall/internal/pkg/clock"
)

// Entry is one fixed-window counter. Stale windows are only ever reset, never
// counted against.
type Entry struct {
	Count       int
	WindowStart time.Time
}

type Store interface {
	Get(key string) (Entry, bool)
	Set(key string, e Entry)
}

type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Limiter counts requests in fixed windows. Fixed-window over sliding-window
// is a deliberate tradeoff: bursts of up to 2x the limit can straddle a
// window edge, which is acceptable for login throttling.
type Limiter struct {
	mu    sync.Mutex
	store Store
	clock clock.Clock
}

func NewLimiter(store Store, clk clock.Clock) *Limiter {
	return &Limiter{store: store, clock: clk}
}

func (l *Limiter) Check(key string, limit int, window time.Duration) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()

	entry, ok := l.store.Get(key)
	if !ok || now.Sub(entry.WindowStart) >= window {
		entry = Entry{Count: 1, WindowStart: now}
	} else {
		entry.Count++
	}
	l.store.Set(key, entry)

	resetAt := entry.WindowStart.Add(window)

	if entry.Count > limit {
		retryAfter := resetAt.Sub(now)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return Result{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}
	}

	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - entry.Count,
		ResetAt:   resetAt,
	}
}
