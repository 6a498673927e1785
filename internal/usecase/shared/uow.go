package shared

import (
	"context"

	"reservas/internal/domain/inventory"
	"reservas/internal/domain/reservation"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reservations/Inventory: Single statement operations outside a transaction
	Reservations() ReservationRepository
	Inventory() InventoryRepository
	// Migrate: Creates the tables when absent
	Migrate(ctx context.Context) error
	Close()
}

type Tx interface {
	Reservations() ReservationRepository
	Inventory() InventoryRepository
	// LockKey holds an exclusive lock on key until the transaction ends
	LockKey(ctx context.Context, key string) error
}

type ReservationRepository interface {
	List(ctx context.Context) ([]reservation.Reservation, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	ExistsAtSlot(ctx context.Context, slot reservation.Slot) (bool, error)
	Create(ctx context.Context, res reservation.Reservation) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type InventoryRepository interface {
	List(ctx context.Context) ([]inventory.Item, error)
	// FindByResource locks the row when called inside a transaction
	FindByResource(ctx context.Context, recurso string) (*inventory.Item, error)
	// AdjustCount applies a relative delta so concurrent writers never overwrite each other
	AdjustCount(ctx context.Context, recurso string, delta int) error
	// Seed inserts rows that do not exist yet and leaves existing counts untouched
	Seed(ctx context.Context, items []inventory.Item) error
}
