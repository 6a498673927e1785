//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"reservas/internal/domain/inventory"
	"reservas/internal/domain/reservation"
	"reservas/internal/pkg/errs"
	"reservas/internal/usecase/queries"
	queriesmock "reservas/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueriesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	q := queries.NewReservationQueries(store)

	t.Run("maps every stored reservation", func(t *testing.T) {
		store.EXPECT().List(gomock.Any()).Return([]reservation.Reservation{
			{ID: 1, Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10", Recurso: "Tablet", Hora: "08:00", Cantidad: 4},
			{ID: 2, Nombre: "Luis", Curso: "6B", Fecha: "2024-05-11", Recurso: "Sala de informática", Hora: "10:00"},
		}, nil)

		got, err := q.List(context.Background())
		require.NoError(t, err)

		want := []queries.ReservationView{
			{ID: 1, Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10", Recurso: "Tablet", Hora: "08:00", Cantidad: 4},
			{ID: 2, Nombre: "Luis", Curso: "6B", Fecha: "2024-05-11", Recurso: "Sala de informática", Hora: "10:00"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("views mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty store gives an empty list", func(t *testing.T) {
		store.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := q.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store failure is marked", func(t *testing.T) {
		store.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk I/O error"))

		_, err := q.List(context.Background())
		assert.True(t, errs.Is(err, queries.ErrReservationListFailed))
	})
}

func TestInventoryQueriesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockInventoryReadStore(ctrl)
	q := queries.NewInventoryQueries(store)

	t.Run("maps every item", func(t *testing.T) {
		store.EXPECT().List(gomock.Any()).Return([]inventory.Item{
			{Recurso: "HDMI", Cantidad: 2},
			{Recurso: "Tablet", Cantidad: 0},
		}, nil)

		got, err := q.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []queries.InventoryView{
			{Recurso: "HDMI", Cantidad: 2},
			{Recurso: "Tablet", Cantidad: 0},
		}, got)
	})

	t.Run("store failure is marked", func(t *testing.T) {
		store.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk I/O error"))

		_, err := q.List(context.Background())
		assert.True(t, errs.Is(err, queries.ErrInventoryListFailed))
	})
}
