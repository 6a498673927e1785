package postgres

import (
	"context"
	"log/slog"

	"reservas/internal/domain/reservation"
	"reservas/internal/infra"
)

const reservationColumns = `id, nombre, curso, fecha, recurso, hora, cantidad`

type ReservationRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewReservationRepository(db DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReservationRepository) List(ctx context.Context) ([]reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reservationColumns+` FROM reservas ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list reservations", err)
	}
	defer rows.Close()

	result := make([]reservation.Reservation, 0)
	for rows.Next() {
		var res reservation.Reservation
		if err := rows.Scan(&res.ID, &res.Nombre, &res.Curso, &res.Fecha, &res.Recurso, &res.Hora, &res.Cantidad); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate reservations", err)
	}

	return result, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	var res reservation.Reservation
	err := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservas WHERE id = $1`, id).
		Scan(&res.ID, &res.Nombre, &res.Curso, &res.Fecha, &res.Recurso, &res.Hora, &res.Cantidad)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, kindOf(err), "failed to find reservation by ID", err)
	}

	return &res, nil
}

func (r *ReservationRepository) ExistsAtSlot(ctx context.Context, slot reservation.Slot) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservas WHERE recurso = $1 AND fecha = $2 AND hora = $3)`,
		slot.Recurso, slot.Fecha, slot.Hora,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check reservation slot", err)
	}

	return exists, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res reservation.Reservation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO reservas (nombre, curso, fecha, recurso, hora, cantidad)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		res.Nombre, res.Curso, res.Fecha, res.Recurso, res.Hora, res.Cantidad,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, kindOf(err), "failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservas WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}

	return nil
}
