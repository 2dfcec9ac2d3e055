package middleware_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"appcost/internal/config"
	"appcost/pkg/middleware"
)

const (
	limiterIdleTTL    = 15 * time.Minute
	limiterSweepEvery = 2 * time.Minute
)

var Module = fx.Provide(provideRateLimiter)

// provideRateLimiter returns nil when RATE_LIMIT_RPS is 0, which turns
// the middleware into a pass-through.
func provideRateLimiter(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) *middleware.RateLimiter {
	if cfg.RateLimitRPS == 0 {
		log.Info("rate limiting disabled")
		return nil
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, limiterIdleTTL)
	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(limiterSweepEvery)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := limiter.Sweep(); n > 0 {
							log.Debug("rate limiter swept idle clients", zap.Int("removed", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})

	return limiter
}
