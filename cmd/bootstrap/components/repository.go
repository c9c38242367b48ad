package components

import (
	"shopbot-checkout/internal/infra/notifier"
	repo_impl "shopbot-checkout/internal/infra/repository"
	"shopbot-checkout/internal/infra/uow"
	"shopbot-checkout/internal/pkg/clock"
	"shopbot-checkout/internal/pkg/config"
	"shopbot-checkout/internal/usecase/commands"
	"shopbot-checkout/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReader)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		NewUnitOfWork,
		NewNotifier,
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}

func NewOrderRepository(db repo_impl.DBTX, clk clock.Clock, cfg config.Config) *repo_impl.OrderRepository {
	return repo_impl.NewOrderRepository(db, clk, cfg.Payment.DeadlineWindow)
}

func NewUnitOfWork(pool *pgxpool.Pool, clk clock.Clock, cfg config.Config) commands.UnitOfWork {
	return uow.NewPostgresUoW(pool, clk, cfg.Payment.DeadlineWindow)
}

func NewNotifier(cfg config.Config) commands.Notifier {
	if cfg.Operators.GatewayURL == "" {
		return notifier.NopNotifier{}
	}
	return notifier.NewGatewayNotifier(cfg.Operators)
}
