package components

import (
	"hotel-booking-api/internal/handler"
	"hotel-booking-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewOrderHandler,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
