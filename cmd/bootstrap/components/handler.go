package components

import (
	"shopbot-checkout/internal/handler"
	"shopbot-checkout/internal/handler/api"
	"shopbot-checkout/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
