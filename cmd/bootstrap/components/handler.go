package components

import (
	"reservas/internal/handler"
	"reservas/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewInventoryHandler,
		api.NewEventsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
