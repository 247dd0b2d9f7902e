//go:build unit

package ratelimit_test

import (
	"testing"
	"time"

	"webmall/internal/pkg/clock"
	"webmall/internal/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testLimit  = 10
	testWindow = 15 * time.Minute
)

func newLimiter(t *testing.T) (*ratelimit.Limiter, *clock.MockClock, *ratelimit.MemoryStore) {
	t.Helper()
	store := ratelimit.NewMemoryStore(testWindow)
	t.Cleanup(store.Close)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return ratelimit.NewLimiter(store, clk), clk, store
}

func TestLimiter(t *testing.T) {
	t.Run("accepts up to the limit and rejects the next request", func(t *testing.T) {
		limiter, _, _ := newLimiter(t)

		for i := 1; i <= testLimit; i++ {
			res := limiter.Check("1.2.3.4:auth", testLimit, testWindow)
			require.True(t, res.Allowed, "request %d should be allowed", i)
			assert.Equal(t, testLimit-i, res.Remaining)
		}

		res := limiter.Check("1.2.3.4:auth", testLimit, testWindow)
		require.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
		assert.Greater(t, res.RetryAfter, time.Duration(0))
	})

	t.Run("retry-after counts down to the window reset", func(t *testing.T) {
		limiter, clk, _ := newLimiter(t)

		for i := 0; i <= testLimit; i++ {
			limiter.Check("k", testLimit, testWindow)
		}
		clk.Add(14 * time.Minute)

		res := limiter.Check("k", testLimit, testWindow)
		require.False(t, res.Allowed)
		assert.LessOrEqual(t, res.RetryAfter, time.Minute)
	})

	t.Run("counter resets to 1 after the window elapses", func(t *testing.T) {
		limiter, clk, _ := newLimiter(t)

		for i := 0; i <= testLimit; i++ {
			res := limiter.Check("k", testLimit, testWindow)
			if i == testLimit {
				require.False(t, res.Allowed)
			}
		}

		clk.Add(testWindow)

		res := limiter.Check("k", testLimit, testWindow)
		require.True(t, res.Allowed)
		assert.Equal(t, testLimit-1, res.Remaining)
		assert.Equal(t, clk.Now().Add(testWindow), res.ResetAt)
	})

	t.Run("keys are counted independently", func(t *testing.T) {
		limiter, _, _ := newLimiter(t)

		for i := 0; i <= testLimit; i++ {
			limiter.Check("a", testLimit, testWindow)
		}
		res := limiter.Check("b", testLimit, testWindow)
		require.True(t, res.Allowed)
	})
}
