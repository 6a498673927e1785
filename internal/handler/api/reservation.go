package api

import (
	"fmt"
	"net/http"
	"strconv"

	reqdto "reservas/internal/handler/dto/request"
	resdto "reservas/internal/handler/dto/response"
	"reservas/internal/handler/httperr"
	"reservas/internal/pkg/errs"
	"reservas/internal/usecase/commands"
	"reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmd commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmd,
		queries:  q,
	}
}

// @Summary List reservations
// @Description Get every stored reservation
// @Tags reservas
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 500 {object} httperr.Response
// @Router /api/reservas [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, ErrMsgListReservations)
		return
	}

	response, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, ErrMsgListReservations)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Create reservation
// @Description Reserve a resource for a date and time slot. Business outcomes are always reported with status 200.
// @Tags reservas
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservar [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, ErrMsgInvalidRequest)
		return
	}

	if _, err := h.commands.Reserve(c.Request.Context(), req.ToInput()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, resdto.MessageResponse{Mensaje: reserveFailureMessage(err)})
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Mensaje: MsgReservationCreated})
}

func reserveFailureMessage(err error) string {
	var insufficient *commands.InsufficientInventoryError
	switch {
	case errs.As(err, &insufficient):
		return fmt.Sprintf(MsgInsufficientInventory, insufficient.Available)
	case errs.Is(err, commands.ErrInvalidQuantity):
		return MsgInvalidQuantity
	case errs.Is(err, commands.ErrSlotTaken):
		return MsgSlotTaken
	case errs.Is(err, commands.ErrRoomCheckFailed):
		return MsgRoomCheckFailed
	case errs.Is(err, commands.ErrInventoryCheckFailed):
		return MsgInventoryCheckFailed
	case errs.Is(err, commands.ErrInventoryUpdateFailed):
		return MsgInventoryUpdateFailed
	default:
		return MsgReservationSaveFailed
	}
}

// @Summary Delete reservation
// @Description Delete a reservation and hand its quantity back to inventory for countable resources
// @Tags reservas
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 500 {object} httperr.Response
// @Router /api/reservas/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, ErrMsgReservationLookup)
		return
	}

	result, err := h.commands.DeleteReservation(c.Request.Context(), id)
	if err != nil {
		msg := ErrMsgReservationLookup
		if errs.Is(err, commands.ErrReservationDeleteFailed) {
			msg = ErrMsgReservationDeletion
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg)
		return
	}

	msg := MsgReservationDeleted
	if result.Countable {
		msg = MsgReservationDeletedStock
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Mensaje: msg})
}
