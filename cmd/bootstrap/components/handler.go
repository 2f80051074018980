package components

import (
	"refreshing-booking/internal/handler"
	"refreshing-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewDraftHandler,
	),
	fx.Invoke(handler.NewRouter),
)
