package bootstrap

import (
	"context"
	"log/slog"

	"shareit/internal/infra/cache"
	"shareit/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns a nil client when REDIS_ADDR is unset; the item catalog
// then reads straight from postgres.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)
	if client == nil {
		logger.Info("item cache disabled")
		return nil
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cache.Ping(ctx, client); err != nil {
				logger.Warn("redis unreachable, item lookups will fall back to postgres", "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}
