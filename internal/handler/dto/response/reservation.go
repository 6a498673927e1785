package response

import (
	"reservas/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Curso    string `json:"curso"`
	Fecha    string `json:"fecha"`
	Recurso  string `json:"recurso"`
	Hora     string `json:"hora"`
	Cantidad int    `json:"cantidad"`
}

func FromReservationViews(views []queries.ReservationView) ([]ReservationResponse, error) {
	out := make([]ReservationResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}
