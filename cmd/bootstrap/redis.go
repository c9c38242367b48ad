package bootstrap

import (
	"context"
	"log/slog"

	"shopbot-checkout/internal/infra/sessionstore"
	"shopbot-checkout/internal/pkg/config"
	"shopbot-checkout/internal/usecase/commands"
	"shopbot-checkout/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewSessionStore,
		func(s commands.SessionStore) queries.SessionReader { return s },
	),
)

// NewSessionStore backs sessions with redis when an address is configured and
// falls back to the in-process store otherwise.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config) commands.SessionStore {
	if cfg.Redis.Addr == "" {
		slog.Warn("no redis address configured, using in-memory checkout sessions")
		return sessionstore.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return sessionstore.NewRedisStore(client, cfg.Redis.SessionTTL)
}
