//go:build unit

package reservation_test

import (
	"encoding/json"
	"testing"

	"reservas/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotKey(t *testing.T) {
	base := reservation.Reservation{Recurso: "Sala de informática", Fecha: "2024-05-10", Hora: "08:00"}

	t.Run("same fields give the same key", func(t *testing.T) {
		other := base
		other.ID = 7
		other.Nombre = "Luis"
		assert.Equal(t, base.Slot().Key(), other.Slot().Key())
	})

	t.Run("no normalization is applied", func(t *testing.T) {
		other := base
		other.Hora = "8:00"
		assert.NotEqual(t, base.Slot().Key(), other.Slot().Key())
	})
}

func TestCreatedPayload(t *testing.T) {
	res := reservation.Reservation{
		ID: 12, Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10",
		Recurso: "Tablet", Hora: "08:00", Cantidad: 3,
	}

	b, err := json.Marshal(res.Created())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.NotContains(t, got, "id")
	assert.Equal(t, "Ana", got["nombre"])
	assert.Equal(t, "5A", got["curso"])
	assert.Equal(t, "Tablet", got["recurso"])
	assert.InDelta(t, 3, got["cantidad"], 0)
}
