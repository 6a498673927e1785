//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"reservas/internal/handler/api"
	resdto "reservas/internal/handler/dto/response"
	"reservas/internal/handler/middleware"
	"reservas/internal/usecase/queries"
	"reservas/tests/common/httptest"
	queriesmock "reservas/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListInventory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *queriesmock.MockInventoryQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockInventoryQueries(ctrl)
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/api/inventario", api.NewInventoryHandler(q).ListInventory)
		return r, q
	}

	t.Run("success: returns remaining counts", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().List(gomock.Any()).Return([]queries.InventoryView{
			{Recurso: "Cargadores", Cantidad: 35},
			{Recurso: "Datas", Cantidad: 0},
		}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/inventario", nil)

		var got []resdto.InventoryResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, []resdto.InventoryResponse{
			{Recurso: "Cargadores", Cantidad: 35},
			{Recurso: "Datas", Cantidad: 0},
		}, got)
	})

	t.Run("error: 500 when the query fails", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk I/O error"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/inventario", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, api.ErrMsgListInventory)
	})
}
