package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"

	"reservas/internal/domain/reservation"
)

// ReservationNotifier delivers committed reservations to live viewers.
// Delivery is best effort: implementations log failures instead of returning them.
type ReservationNotifier interface {
	NotifyNewReservation(ctx context.Context, created reservation.Created)
}
