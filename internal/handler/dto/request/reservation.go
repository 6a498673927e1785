package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"reservas/internal/usecase/commands"
)

type ReserveRequest struct {
	Nombre   string   `json:"nombre"`
	Curso    string   `json:"curso"`
	Fecha    string   `json:"fecha"`
	Recurso  string   `json:"recurso"`
	Hora     string   `json:"hora"`
	Cantidad Quantity `json:"cantidad"`
}

func (r ReserveRequest) ToInput() commands.ReserveInput {
	return commands.ReserveInput{
		Nombre:   r.Nombre,
		Curso:    r.Curso,
		Fecha:    r.Fecha,
		Recurso:  r.Recurso,
		Hora:     r.Hora,
		Cantidad: int(r.Cantidad),
	}
}

// Quantity accepts a JSON number or a numeric string, as sent by HTML form inputs.
// Missing, null and empty values decode to zero.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*q = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*q = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*q = Quantity(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*q = Quantity(n)
	return nil
}
