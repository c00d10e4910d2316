package components

import (
	"flashsale/internal/handler"
	"flashsale/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVoucherHandler,
		api.NewShopHandler,
	),
	fx.Invoke(handler.NewRouter),
)
