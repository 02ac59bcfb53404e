package cache

import (
	"context"
	"log/slog"

	"pagecast/config"
	"pagecast/internal/domain/lifecycle"
	"pagecast/internal/domain/service"
	"pagecast/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// MultiInvalidator fans a tag invalidation out to every layer. All layers are
// attempted; their errors are joined.
type MultiInvalidator []service.TagInvalidator

func (m MultiInvalidator) InvalidateTag(ctx context.Context, tag string) error {
	var errs []error
	for _, inv := range m {
		if err := inv.InvalidateTag(ctx, tag); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewResponseCache returns a Redis-backed cache, or a no-op cache when no
// Redis address is configured.
func NewResponseCache(params Params) service.ResponseCache {
	cfg := params.Config.Cache
	if cfg.RedisAddr == "" {
		params.Logger.Info("Response cache disabled, no redis address configured")

		return NoopCache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional; a dead Redis only costs hit rate.
			if err := rdb.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, serving without cache", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return NewRedisCache(rdb, cfg.TTL)
}

// NewTagInvalidator combines the response cache with the edge purge webhook
// when one is configured.
func NewTagInvalidator(cfg *config.Config, responseCache service.ResponseCache) service.TagInvalidator {
	invalidators := MultiInvalidator{responseCache}
	if cfg.Cache.PurgeWebhookURL != "" {
		invalidators = append(invalidators, NewPurgeWebhook(cfg.Cache.PurgeWebhookURL, cfg.Cache.PurgeToken, cfg.Cache.PurgeTimeout))
	}

	return invalidators
}
