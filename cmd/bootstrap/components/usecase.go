package components

import (
	"shopbot-checkout/internal/pkg/clock"
	"shopbot-checkout/internal/pkg/config"
	"shopbot-checkout/internal/usecase/commands"
	"shopbot-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewCheckoutCommands,
		queries.NewCheckoutQueries,
	),
)

func NewCheckoutCommands(
	uow commands.UnitOfWork,
	orders commands.OrderRepository,
	users commands.UserRepository,
	sessions commands.SessionStore,
	notifier commands.Notifier,
	clk clock.Clock,
	cfg config.Config,
) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(uow, orders, users, sessions, notifier, clk, cfg.Payment)
}
