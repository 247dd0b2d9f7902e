package bootstrap

import (
	"context"

	"webmall/internal/pkg/config"
	"webmall/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		fx.Annotate(
			NewRateLimitStore,
			fx.As(new(ratelimit.Store)),
		),
		ratelimit.NewLimiter,
	),
)

func NewRateLimitStore(lc fx.Lifecycle, cfg config.Config) *ratelimit.MemoryStore {
	// Expired windows are swept on a TTL twice the window length so a key
	// is never reaped mid-window.
	store := ratelimit.NewMemoryStore(2 * cfg.RateLimit.LoginWindow)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			store.Close()
			return nil
		},
	})

	return store
}
