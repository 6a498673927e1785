package response

import (
	"reservas/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type InventoryResponse struct {
	Recurso  string `json:"recurso"`
	Cantidad int    `json:"cantidad"`
}

func FromInventoryViews(views []queries.InventoryView) ([]InventoryResponse, error) {
	out := make([]InventoryResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}
