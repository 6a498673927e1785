package queries

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/queries/inventory.go -package=queriesmock

import (
	"context"

	"reservas/internal/domain/inventory"
	"reservas/internal/pkg/errs"
)

var ErrInventoryListFailed = errs.New("failed to list inventory")

type InventoryView struct {
	Recurso  string `json:"recurso"`
	Cantidad int    `json:"cantidad"`
}

type InventoryReadStore interface {
	List(ctx context.Context) ([]inventory.Item, error)
}

type InventoryQueries interface {
	List(ctx context.Context) ([]InventoryView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) List(ctx context.Context) ([]InventoryView, error) {
	items, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrInventoryListFailed)
	}

	views := make([]InventoryView, len(items))
	for i, item := range items {
		views[i] = InventoryView{Recurso: item.Recurso, Cantidad: item.Cantidad}
	}
	return views, nil
}
