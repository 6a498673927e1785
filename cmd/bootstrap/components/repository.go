package components

import (
	"reservas/internal/usecase/queries"
	"reservas/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read-side stores run single statements outside a transaction
		func(uow shared.UnitOfWork) queries.ReservationReadStore {
			return uow.Reservations()
		},
		func(uow shared.UnitOfWork) queries.InventoryReadStore {
			return uow.Inventory()
		},
	),
)
