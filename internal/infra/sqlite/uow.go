package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"reservas/internal/pkg/errs"
	"reservas/internal/usecase/shared"
)

var (
	errTransactionBegin  = errs.New("failed to begin sqlite transaction")
	errTransactionCommit = errs.New("failed to commit sqlite transaction")
)

type UoW struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewUoW(db *sql.DB, logger *slog.Logger) *UoW {
	return &UoW{db: db, logger: logger}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	sqlTx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err := fn(ctx, &sqliteTx{tx: sqlTx, logger: u.logger}); err != nil {
		if rollbackErr := sqlTx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			u.logger.Warn("rollback failed", "error", rollbackErr.Error())
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *UoW) Reservations() shared.ReservationRepository {
	return NewReservationRepository(u.db, u.logger)
}

func (u *UoW) Inventory() shared.InventoryRepository {
	return NewInventoryRepository(u.db, u.logger)
}

func (u *UoW) Migrate(ctx context.Context) error {
	return migrate(ctx, u.db)
}

func (u *UoW) Close() {
	if err := u.db.Close(); err != nil {
		u.logger.Warn("failed to close sqlite database", "error", err.Error())
	}
}

type sqliteTx struct {
	tx     *sql.Tx
	logger *slog.Logger
}

func (t *sqliteTx) Reservations() shared.ReservationRepository {
	return NewReservationRepository(t.tx, t.logger)
}

func (t *sqliteTx) Inventory() shared.InventoryRepository {
	return NewInventoryRepository(t.tx, t.logger)
}

// Only one connection is ever open, so every transaction already runs alone.
func (t *sqliteTx) LockKey(context.Context, string) error {
	return nil
}
