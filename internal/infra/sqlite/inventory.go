package sqlite

import (
	"context"
	"log/slog"

	"reservas/internal/domain/inventory"
	"reservas/internal/infra"
)

type InventoryRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewInventoryRepository(db DBTX, logger *slog.Logger) *InventoryRepository {
	return &InventoryRepository{db: db, logger: logger}
}

func (r *InventoryRepository) List(ctx context.Context) ([]inventory.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT recurso, cantidad FROM inventario ORDER BY recurso`)
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

// SQLite has no row locks; the single connection already serializes transactions.
func (r *InventoryRepository) FindByResource(ctx context.Context, recurso string) (*inventory.Item, error) {
	var item inventory.Item
	err := r.db.QueryRowContext(ctx, `SELECT recurso, cantidad FROM inventario WHERE recurso = ?`, recurso).
		Scan(&item.Recurso, &item.Cantidad)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, kindOf(err), "failed to find inventory item", err)
	}

	return &item, nil
}

func (r *InventoryRepository) AdjustCount(ctx context.Context, recurso string, delta int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE inventario SET cantidad = cantidad + ? WHERE recurso = ?`, delta, recurso)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to adjust inventory count", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read affected rows", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "inventory item not found", nil)
	}

	return nil
}

func (r *InventoryRepository) Seed(ctx context.Context, items []inventory.Item) error {
	for _, item := range items {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO inventario (recurso, cantidad) VALUES (?, ?)`,
			item.Recurso, item.Cantidad,
		); err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to seed inventory", err)
		}
	}

	return nil
}
