package postgres

import (
	"context"
	"log/slog"

	"reservas/internal/domain/inventory"
	"reservas/internal/infra"

	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct {
	db     DBTX
	logger *slog.Logger
	// lockRows adds FOR UPDATE to single-row reads; only meaningful inside a transaction
	lockRows bool
}

func NewInventoryRepository(db DBTX, logger *slog.Logger) *InventoryRepository {
	return &InventoryRepository{
		db:     db,
		logger: logger,
	}
}

func newTxInventoryRepository(tx pgx.Tx, logger *slog.Logger) *InventoryRepository {
	return &InventoryRepository{
		db:       tx,
		logger:   logger,
		lockRows: true,
	}
}

func (r *InventoryRepository) List(ctx context.Context) ([]inventory.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT recurso, cantidad FROM inventario ORDER BY recurso`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list inventory", err)
	}
	defer rows.Close()

	result := make([]inventory.Item, 0)
	for rows.Next() {
		var item inventory.Item
		if err := rows.Scan(&item.Recurso, &item.Cantidad); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan inventory item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate inventory", err)
	}

	return result, nil
}

func (r *InventoryRepository) FindByResource(ctx context.Context, recurso string) (*inventory.Item, error) {
	query := `SELECT recurso, cantidad FROM inventario WHERE recurso = $1`
	if r.lockRows {
		query += ` FOR UPDATE`
	}

	var item inventory.Item
	if err := r.db.QueryRow(ctx, query, recurso).Scan(&item.Recurso, &item.Cantidad); err != nil {
		return nil, infra.WrapRepoErr(r.logger, kindOf(err), "failed to find inventory item", err)
	}

	return &item, nil
}

func (r *InventoryRepository) AdjustCount(ctx context.Context, recurso string, delta int) error {
	tag, err := r.db.Exec(ctx, `UPDATE inventario SET cantidad = cantidad + $1 WHERE recurso = $2`, delta, recurso)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to adjust inventory count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "inventory item not found", nil)
	}

	return nil
}

func (r *InventoryRepository) Seed(ctx context.Context, items []inventory.Item) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(
			`INSERT INTO inventario (recurso, cantidad) VALUES ($1, $2) ON CONFLICT (recurso) DO NOTHING`,
			item.Recurso, item.Cantidad,
		)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to seed inventory", err)
	}

	return nil
}
