package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"

	"reservas/internal/domain/reservation"
	"reservas/internal/pkg/errs"
)

var ErrReservationListFailed = errs.New("failed to list reservations")

// Read models (DTO for read side)
type ReservationView struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Curso    string `json:"curso"`
	Fecha    string `json:"fecha"`
	Recurso  string `json:"recurso"`
	Hora     string `json:"hora"`
	Cantidad int    `json:"cantidad"`
}

type ReservationReadStore interface {
	List(ctx context.Context) ([]reservation.Reservation, error)
}

type ReservationQueries interface {
	List(ctx context.Context) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]ReservationView, error) {
	rows, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationListFailed)
	}

	views := make([]ReservationView, len(rows))
	for i, r := range rows {
		views[i] = ReservationView{
			ID:       r.ID,
			Nombre:   r.Nombre,
			Curso:    r.Curso,
			Fecha:    r.Fecha,
			Recurso:  r.Recurso,
			Hora:     r.Hora,
			Cantidad: r.Cantidad,
		}
	}
	return views, nil
}
