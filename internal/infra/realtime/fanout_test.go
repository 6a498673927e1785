//go:build unit

package realtime_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"reservas/internal/domain/reservation"
	"reservas/internal/infra/realtime"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	name string
	err  error
	got  []reservation.Created
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Send(_ context.Context, c reservation.Created) error {
	s.got = append(s.got, c)
	return s.err
}

func TestFanoutDeliversToEverySinkDespiteFailures(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	failing := &recordingSink{name: "amqp", err: errors.New("connection reset")}
	healthy := &recordingSink{name: "sse"}
	fanout := realtime.NewFanout(logger, failing, healthy)

	fanout.NotifyNewReservation(context.Background(), created())

	assert.Equal(t, []reservation.Created{created()}, failing.got)
	assert.Equal(t, []reservation.Created{created()}, healthy.got)
	assert.Contains(t, logs.String(), "sink=amqp")
	assert.Contains(t, logs.String(), "connection reset")
}

func TestFanoutWithHub(t *testing.T) {
	hub := realtime.NewHub(1, discardLogger())
	sub, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	realtime.NewFanout(discardLogger(), hub).NotifyNewReservation(context.Background(), created())

	ev := receive(t, sub)
	assert.Equal(t, created(), ev.Data)
}
