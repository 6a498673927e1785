package api

import (
	"net/http"

	resdto "reservas/internal/handler/dto/response"
	"reservas/internal/handler/httperr"
	"reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	queries queries.InventoryQueries
}

func NewInventoryHandler(q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{queries: q}
}

// @Summary List inventory
// @Description Get the remaining count of every countable resource
// @Tags inventario
// @Produce json
// @Success 200 {array} resdto.InventoryResponse
// @Failure 500 {object} httperr.Response
// @Router /api/inventario [get]
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, ErrMsgListInventory)
		return
	}

	response, err := resdto.FromInventoryViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, ErrMsgListInventory)
		return
	}

	c.JSON(http.StatusOK, response)
}
