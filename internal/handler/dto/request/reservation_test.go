//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"reservas/internal/handler/dto/request"
	"reservas/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityUnmarshal(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    request.Quantity
		wantErr bool
	}{
		{name: "number", raw: `5`, want: 5},
		{name: "numeric string", raw: `"12"`, want: 12},
		{name: "padded string", raw: `" 7 "`, want: 7},
		{name: "empty string", raw: `""`, want: 0},
		{name: "null", raw: `null`, want: 0},
		{name: "negative", raw: `-2`, want: -2},
		{name: "word", raw: `"diez"`, wantErr: true},
		{name: "fraction", raw: `1.5`, wantErr: true},
		{name: "bool", raw: `true`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var q request.Quantity
			err := json.Unmarshal([]byte(tc.raw), &q)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, q)
		})
	}
}

func TestReserveRequestToInput(t *testing.T) {
	var req request.ReserveRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"nombre": "Ana", "curso": "5A", "fecha": "2024-05-10",
		"recurso": "Cargadores", "hora": "08:00", "cantidad": "4"
	}`), &req))

	assert.Equal(t, commands.ReserveInput{
		Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10",
		Recurso: "Cargadores", Hora: "08:00", Cantidad: 4,
	}, req.ToInput())
}

func TestReserveRequestMissingQuantity(t *testing.T) {
	var req request.ReserveRequest
	require.NoError(t, json.Unmarshal([]byte(`{"recurso": "Sala de informática"}`), &req))
	assert.Equal(t, 0, req.ToInput().Cantidad)
}
