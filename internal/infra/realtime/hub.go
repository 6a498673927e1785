package realtime

import (
	"context"
	"log/slog"
	"sync"

	"reservas/internal/domain/reservation"

	"github.com/google/uuid"
)

const EventNewReservation = "nuevaReserva"

type Event struct {
	Name string
	Data any
}

type Subscription struct {
	ID     uuid.UUID
	Events <-chan Event
}

// Hub keeps the set of connected stream clients. Late subscribers get no replay.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]chan Event
	buffer  int
	logger  *slog.Logger
}

func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		clients: make(map[uuid.UUID]chan Event),
		buffer:  buffer,
		logger:  logger,
	}
}

// Subscribe registers a client; the returned func must be called once the client goes away.
func (h *Hub) Subscribe() (Subscription, func()) {
	id := uuid.New()
	ch := make(chan Event, h.buffer)

	h.mu.Lock()
	h.clients[id] = ch
	h.mu.Unlock()

	h.logger.Debug("realtime client connected", slog.String("client_id", id.String()))

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.clients, id)
			close(ch)
			h.mu.Unlock()
			h.logger.Debug("realtime client disconnected", slog.String("client_id", id.String()))
		})
	}

	return Subscription{ID: id, Events: ch}, unsubscribe
}

// Publish never blocks: a client whose buffer is full misses the event.
func (h *Hub) Publish(ev Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for id, ch := range h.clients {
		select {
		case ch <- ev:
			delivered++
		default:
			h.logger.Warn("dropping realtime event for slow client",
				slog.String("client_id", id.String()),
				slog.String("event", ev.Name),
			)
		}
	}
	return delivered
}

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Name() string {
	return "sse"
}

func (h *Hub) Send(_ context.Context, created reservation.Created) error {
	h.Publish(Event{Name: EventNewReservation, Data: created})
	return nil
}
