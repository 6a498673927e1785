//go:build unit

package api_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"reservas/internal/domain/reservation"
	"reservas/internal/handler/api"
	"reservas/internal/handler/middleware"
	"reservas/internal/infra/realtime"
	"reservas/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sseFrame struct {
	event   string
	data    string
	comment string
}

// readFrame reads up to the next blank line.
func readFrame(t *testing.T, r *bufio.Reader) sseFrame {
	t.Helper()
	var f sseFrame
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return f
		case strings.HasPrefix(line, ":"):
			f.comment = strings.TrimSpace(strings.TrimPrefix(line, ":"))
		case strings.HasPrefix(line, "event:"):
			f.event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			f.data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
}

func startStream(t *testing.T, keepAlive time.Duration) (*realtime.Hub, *bufio.Reader, *http.Response, context.CancelFunc) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := realtime.NewHub(4, slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg := config.NewTestConfig()
	cfg.Realtime.KeepAlive = keepAlive

	r := gin.New()
	r.GET("/api/eventos", middleware.EventStreamHeaders(), api.NewEventsHandler(hub, cfg).Stream)

	srv := nethttptest.NewServer(r)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/eventos", nil)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return hub, bufio.NewReader(resp.Body), resp, cancel
}

func TestEventsStreamDeliversNewReservations(t *testing.T) {
	hub, reader, resp, cancel := startStream(t, time.Minute)
	defer cancel()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	require.Equal(t, 1, hub.Clients())

	payload := reservation.Created{
		Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10",
		Recurso: "Datas", Hora: "08:00", Cantidad: 1,
	}
	require.NoError(t, hub.Send(context.Background(), payload))

	frame := readFrame(t, reader)
	assert.Equal(t, realtime.EventNewReservation, frame.event)

	var got reservation.Created
	require.NoError(t, json.Unmarshal([]byte(frame.data), &got))
	assert.Equal(t, payload, got)
}

func TestEventsStreamKeepAlive(t *testing.T) {
	_, reader, _, cancel := startStream(t, 20*time.Millisecond)
	defer cancel()

	frame := readFrame(t, reader)
	assert.Equal(t, "keepalive", frame.comment)
}

func TestEventsStreamUnsubscribesOnDisconnect(t *testing.T) {
	hub, _, resp, cancel := startStream(t, time.Minute)
	require.Equal(t, 1, hub.Clients())

	cancel()
	resp.Body.Close()

	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}
