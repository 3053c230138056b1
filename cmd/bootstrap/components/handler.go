package components

import (
	"barber-booking/internal/handler"
	"barber-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
