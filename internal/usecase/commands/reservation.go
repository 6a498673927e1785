package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"

	"reservas/internal/domain/inventory"
	"reservas/internal/domain/reservation"
	"reservas/internal/domain/resource"
	"reservas/internal/infra"
	"reservas/internal/pkg/errs"
	"reservas/internal/usecase/shared"
)

var (
	ErrRoomCheckFailed         = errs.New("room availability check failed")
	ErrSlotTaken               = errs.New("time slot already reserved")
	ErrInventoryCheckFailed    = errs.New("inventory check failed")
	ErrInventoryUpdateFailed   = errs.New("inventory update failed")
	ErrReservationSaveFailed   = errs.New("reservation save failed")
	ErrInvalidQuantity         = errs.New("requested quantity must be positive")
	ErrReservationLookupFailed = errs.New("reservation lookup failed")
	ErrReservationDeleteFailed = errs.New("reservation delete failed")
)

var reserveFailures = []error{
	ErrRoomCheckFailed,
	ErrSlotTaken,
	ErrInventoryCheckFailed,
	ErrInventoryUpdateFailed,
	ErrReservationSaveFailed,
	ErrInvalidQuantity,
}

type InsufficientInventoryError struct {
	Recurso   string
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for %s: requested %d, available %d", e.Recurso, e.Requested, e.Available)
}

type ReserveInput struct {
	Nombre   string
	Curso    string
	Fecha    string
	Recurso  string
	Hora     string
	Cantidad int
}

type DeleteResult struct {
	// Countable is set when the deleted reservation held inventory that was handed back.
	Countable bool
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*reservation.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) (*DeleteResult, error)
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	catalog  *resource.Catalog
	notifier ReservationNotifier
	logger   *slog.Logger
}

func NewReservationCommands(uow shared.UnitOfWork, catalog *resource.Catalog, notifier ReservationNotifier, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *reservationCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*reservation.Reservation, error) {
	res := reservation.Reservation{
		Nombre:   in.Nombre,
		Curso:    in.Curso,
		Fecha:    in.Fecha,
		Recurso:  in.Recurso,
		Hora:     in.Hora,
		Cantidad: in.Cantidad,
	}

	var err error
	switch uc.catalog.KindOf(in.Recurso) {
	case resource.KindRoom:
		err = uc.reserveRoom(ctx, &res)
	case resource.KindCountable:
		err = uc.reserveCountable(ctx, &res)
	default:
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return writeReservation(ctx, tx, &res)
		})
	}
	if err != nil {
		return nil, classifyReserveErr(err)
	}

	uc.notifier.NotifyNewReservation(ctx, res.Created())
	return &res, nil
}

func (uc *reservationCommandsImpl) reserveRoom(ctx context.Context, res *reservation.Reservation) error {
	slot := res.Slot()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockKey(ctx, "room:"+slot.Key()); err != nil {
			return errs.Mark(err, ErrRoomCheckFailed)
		}

		taken, err := tx.Reservations().ExistsAtSlot(ctx, slot)
		if err != nil {
			return errs.Mark(err, ErrRoomCheckFailed)
		}
		if taken {
			return ErrSlotTaken
		}

		return writeReservation(ctx, tx, res)
	})
}

func (uc *reservationCommandsImpl) reserveCountable(ctx context.Context, res *reservation.Reservation) error {
	if res.Cantidad < 1 {
		return ErrInvalidQuantity
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockKey(ctx, "inventory:"+res.Recurso); err != nil {
			return errs.Mark(err, ErrInventoryCheckFailed)
		}

		stock := inventory.Item{Recurso: res.Recurso}
		item, err := tx.Inventory().FindByResource(ctx, res.Recurso)
		switch {
		case err == nil:
			stock = *item
		case infra.IsKind(err, infra.KindNotFound):
			// a missing row means nothing is left
		default:
			return errs.Mark(err, ErrInventoryCheckFailed)
		}

		if !stock.Covers(res.Cantidad) {
			return &InsufficientInventoryError{
				Recurso:   res.Recurso,
				Requested: res.Cantidad,
				Available: stock.Cantidad,
			}
		}

		if err := tx.Inventory().AdjustCount(ctx, res.Recurso, -res.Cantidad); err != nil {
			return errs.Mark(err, ErrInventoryUpdateFailed)
		}

		return writeReservation(ctx, tx, res)
	})
}

func writeReservation(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	id, err := tx.Reservations().Create(ctx, *res)
	if err != nil {
		return errs.Mark(err, ErrReservationSaveFailed)
	}
	res.ID = id
	return nil
}

// Begin and commit failures carry no step marker and are reported as save failures.
func classifyReserveErr(err error) error {
	var insufficient *InsufficientInventoryError
	if errs.As(err, &insufficient) {
		return err
	}
	for _, known := range reserveFailures {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrReservationSaveFailed)
}

func (uc *reservationCommandsImpl) DeleteReservation(ctx context.Context, id int64) (*DeleteResult, error) {
	res, err := uc.uow.Reservations().FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationLookupFailed)
	}

	if err := uc.uow.Reservations().Delete(ctx, id); err != nil {
		return nil, errs.Mark(err, ErrReservationDeleteFailed)
	}

	if !uc.catalog.IsCountable(res.Recurso) {
		return &DeleteResult{}, nil
	}

	if err := uc.uow.Inventory().AdjustCount(ctx, res.Recurso, res.Cantidad); err != nil {
		uc.logger.Warn("failed to restore inventory after deleting reservation",
			slog.Int64("reservation_id", id),
			slog.String("recurso", res.Recurso),
			slog.Int("cantidad", res.Cantidad),
			slog.String("error", err.Error()),
		)
	}

	return &DeleteResult{Countable: true}, nil
}
