package realtime

import (
	"context"
	"log/slog"

	"reservas/internal/domain/reservation"
)

type Sink interface {
	Name() string
	Send(ctx context.Context, created reservation.Created) error
}

// Fanout forwards each new reservation to every sink. A failing sink does not stop the others.
type Fanout struct {
	sinks  []Sink
	logger *slog.Logger
}

func NewFanout(logger *slog.Logger, sinks ...Sink) *Fanout {
	return &Fanout{sinks: sinks, logger: logger}
}

func (f *Fanout) NotifyNewReservation(ctx context.Context, created reservation.Created) {
	for _, s := range f.sinks {
		if err := s.Send(ctx, created); err != nil {
			f.logger.Error("failed to broadcast reservation",
				slog.String("sink", s.Name()),
				slog.String("recurso", created.Recurso),
				slog.String("error", err.Error()),
			)
		}
	}
}
