//go:build e2e

package reservation_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"reservas/internal/domain/reservation"
	"reservas/internal/domain/resource"
	"reservas/internal/handler/api"
	"reservas/internal/handler/dto/request"
	"reservas/internal/handler/dto/response"
	"reservas/tests/common/dbtest"
	"reservas/tests/common/httptest"
	"reservas/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reserveURL      = "/api/reservar"
	reservationsURL = "/api/reservas"
	inventoryURL    = "/api/inventario"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func tabletRequest(nombre string, cantidad int) request.ReserveRequest {
	return request.ReserveRequest{
		Nombre:   nombre,
		Curso:    "5A",
		Fecha:    "2024-05-10",
		Recurso:  resource.Tablet,
		Hora:     "08:00",
		Cantidad: request.Quantity(cantidad),
	}
}

// =============================================================================
// TestReserve - POST /api/reservar
// =============================================================================

func (s *ReservationSuite) TestReserve() {
	s.Run("Normal case: countable reservation decrements inventory", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, tabletRequest("Ana", 50))
		httptest.AssertMessageResponse(t, w, api.MsgReservationCreated)

		require.Equal(t, 46, dbtest.InventoryCount(t, s.DB, resource.Tablet))
		require.Equal(t, 1, dbtest.CountReservations(t, s.DB))
	})

	s.Run("Error case: request above remaining stock is rejected without changes", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, tabletRequest("Ana", 50))
		httptest.AssertMessageResponse(t, w, api.MsgReservationCreated)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, tabletRequest("Luis", 50))
		httptest.AssertMessageResponse(t, w, fmt.Sprintf(api.MsgInsufficientInventory, 46))

		require.Equal(t, 46, dbtest.InventoryCount(t, s.DB, resource.Tablet))
		require.Equal(t, 1, dbtest.CountReservations(t, s.DB))
	})

	s.Run("Error case: second booking of the same room slot is rejected", func() {
		t := s.T()

		room := request.ReserveRequest{
			Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10",
			Recurso: resource.ComputerRoom, Hora: "08:00",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, room)
		httptest.AssertMessageResponse(t, w, api.MsgReservationCreated)

		room.Nombre = "Luis"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, room)
		httptest.AssertMessageResponse(t, w, api.MsgSlotTaken)

		room.Hora = "09:00"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, room)
		httptest.AssertMessageResponse(t, w, api.MsgReservationCreated)

		require.Equal(t, 2, dbtest.CountReservations(t, s.DB))
	})

	s.Run("Normal case: concurrent requests never oversell inventory", func() {
		t := s.T()
		dbtest.SetInventoryCount(t, s.DB, resource.Projectors, 2)

		body, err := json.Marshal(request.ReserveRequest{
			Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10",
			Recurso: resource.Projectors, Hora: "08:00", Cantidad: 1,
		})
		require.NoError(t, err)

		const workers = 8
		messages := make([]string, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, reserveURL, "application/json", string(body))
				var res response.MessageResponse
				if json.Unmarshal(w.Body.Bytes(), &res) == nil {
					messages[i] = res.Mensaje
				}
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, m := range messages {
			if m == api.MsgReservationCreated {
				succeeded++
			}
		}
		require.Equal(t, 2, succeeded)
		require.Equal(t, 0, dbtest.InventoryCount(t, s.DB, resource.Projectors))
		require.Equal(t, 2, dbtest.CountReservations(t, s.DB))
	})
}

// =============================================================================
// TestListAndDelete - GET /api/reservas, GET /api/inventario, DELETE /api/reservas/:id
// =============================================================================

func (s *ReservationSuite) TestListAndDelete() {
	s.Run("Normal case: lists stored reservations in insertion order", func() {
		t := s.T()

		first := reservation.Reservation{Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10", Recurso: resource.HDMI, Hora: "08:00", Cantidad: 1}
		second := reservation.Reservation{Nombre: "Luis", Curso: "6B", Fecha: "2024-05-11", Recurso: "Parlante", Hora: "10:00"}
		firstID := dbtest.CreateTestReservation(t, s.DB, first)
		secondID := dbtest.CreateTestReservation(t, s.DB, second)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil)
		var got []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := []response.ReservationResponse{
			{ID: firstID, Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10", Recurso: resource.HDMI, Hora: "08:00", Cantidad: 1},
			{ID: secondID, Nombre: "Luis", Curso: "6B", Fecha: "2024-05-11", Recurso: "Parlante", Hora: "10:00"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("reservations mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: inventory lists the seeded resources", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL, nil)
		var got []response.InventoryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := []response.InventoryResponse{
			{Recurso: resource.Chargers, Cantidad: 96},
			{Recurso: resource.Projectors, Cantidad: 2},
			{Recurso: resource.HDMI, Cantidad: 2},
			{Recurso: resource.Tablet, Cantidad: 96},
		}
		sortByName := cmpopts.SortSlices(func(a, b response.InventoryResponse) bool { return a.Recurso < b.Recurso })
		if diff := cmp.Diff(want, got, sortByName); diff != "" {
			t.Errorf("inventory mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: deleting a countable reservation restores inventory", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, tabletRequest("Ana", 10))
		httptest.AssertMessageResponse(t, w, api.MsgReservationCreated)
		require.Equal(t, 86, dbtest.InventoryCount(t, s.DB, resource.Tablet))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/1", nil)
		httptest.AssertMessageResponse(t, w, api.MsgReservationDeletedStock)

		require.Equal(t, 96, dbtest.InventoryCount(t, s.DB, resource.Tablet))
		require.Equal(t, 0, dbtest.CountReservations(t, s.DB))
	})

	s.Run("Normal case: deleting a room reservation leaves inventory alone", func() {
		t := s.T()

		id := dbtest.CreateTestReservation(t, s.DB, reservation.Reservation{
			Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10", Recurso: resource.ComputerRoom, Hora: "08:00",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("%s/%d", reservationsURL, id), nil)
		httptest.AssertMessageResponse(t, w, api.MsgReservationDeleted)
	})

	s.Run("Error case: unknown id returns 500", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/999", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, api.ErrMsgReservationLookup)
	})
}
