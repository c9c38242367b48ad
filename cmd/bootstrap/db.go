package bootstrap

import (
	"context"

	"shopbot-checkout/internal/infra/db"
	"shopbot-checkout/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(cfg.DB); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
