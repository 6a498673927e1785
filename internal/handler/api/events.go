package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"reservas/internal/infra/realtime"
	"reservas/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	hub       *realtime.Hub
	keepAlive time.Duration
}

func NewEventsHandler(hub *realtime.Hub, cfg config.Config) *EventsHandler {
	keepAlive := cfg.Realtime.KeepAlive
	if keepAlive <= 0 {
		keepAlive = 25 * time.Second
	}
	return &EventsHandler{hub: hub, keepAlive: keepAlive}
}

// @Summary Reservation stream
// @Description Server-Sent Events stream; emits "nuevaReserva" for every stored reservation
// @Tags eventos
// @Produce text/event-stream
// @Success 200 {object} reservation.Created
// @Router /api/eventos [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	sub, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-sub.Events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev.Data)
			return true
		case <-ticker.C:
			_, err := fmt.Fprint(w, ": keepalive\n\n")
			return err == nil
		}
	})
}
