//go:build unit

package realtime_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"reservas/internal/domain/reservation"
	"reservas/internal/infra/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func created() reservation.Created {
	return reservation.Created{
		Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10",
		Recurso: "Tablet", Hora: "08:00", Cantidad: 3,
	}
}

func receive(t *testing.T, sub realtime.Subscription) realtime.Event {
	t.Helper()
	select {
	case ev := <-sub.Events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return realtime.Event{}
	}
}

func TestHubBroadcastsToEveryClient(t *testing.T) {
	hub := realtime.NewHub(4, discardLogger())

	first, unsubFirst := hub.Subscribe()
	defer unsubFirst()
	second, unsubSecond := hub.Subscribe()
	defer unsubSecond()
	require.Equal(t, 2, hub.Clients())

	require.NoError(t, hub.Send(context.Background(), created()))

	for _, sub := range []realtime.Subscription{first, second} {
		ev := receive(t, sub)
		assert.Equal(t, realtime.EventNewReservation, ev.Name)
		assert.Equal(t, created(), ev.Data)
	}
}

func TestHubLateSubscriberGetsNoReplay(t *testing.T) {
	hub := realtime.NewHub(4, discardLogger())
	assert.Equal(t, 0, hub.Publish(realtime.Event{Name: realtime.EventNewReservation}))

	sub, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	select {
	case ev := <-sub.Events:
		t.Fatalf("unexpected event %v", ev)
	default:
	}
}

func TestHubDropsEventsForSlowClients(t *testing.T) {
	hub := realtime.NewHub(1, discardLogger())

	slow, unsubSlow := hub.Subscribe()
	defer unsubSlow()

	assert.Equal(t, 1, hub.Publish(realtime.Event{Name: "a"}))
	assert.Equal(t, 0, hub.Publish(realtime.Event{Name: "b"}), "full buffer must not block the publisher")

	assert.Equal(t, "a", receive(t, slow).Name)
}

func TestHubUnsubscribe(t *testing.T) {
	hub := realtime.NewHub(1, discardLogger())

	sub, unsubscribe := hub.Subscribe()
	unsubscribe()
	unsubscribe()

	assert.Equal(t, 0, hub.Clients())
	_, open := <-sub.Events
	assert.False(t, open)
	assert.Equal(t, 0, hub.Publish(realtime.Event{Name: "a"}))
}

func TestHubConcurrentUse(t *testing.T) {
	hub := realtime.NewHub(64, discardLogger())

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, unsubscribe := hub.Subscribe()
			defer unsubscribe()
			time.Sleep(time.Millisecond)
		}()
		go func() {
			defer wg.Done()
			hub.Publish(realtime.Event{Name: realtime.EventNewReservation})
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Clients())
}
