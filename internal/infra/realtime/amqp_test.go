//go:build unit

package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"reservas/internal/domain/reservation"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	declareErr error
	publishErr error
	published  []published
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisherSend(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewAMQPPublisher(ch, "reservas.events")
	require.NoError(t, err)
	assert.Equal(t, []string{"reservas.events:topic"}, ch.declared)

	fixed := time.Date(2024, 5, 10, 13, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	payload := reservation.Created{Nombre: "Ana", Curso: "5A", Fecha: "2024-05-10", Recurso: "Tablet", Hora: "08:00", Cantidad: 3}
	require.NoError(t, p.Send(context.Background(), payload))
	require.Len(t, ch.published, 1)

	got := ch.published[0]
	assert.Equal(t, "reservas.events", got.exchange)
	assert.Equal(t, RoutingKeyReservation, got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var env Envelope
	require.NoError(t, json.Unmarshal(got.msg.Body, &env))
	assert.Equal(t, "reservation.created", env.EventType)
	assert.True(t, env.Timestamp.Equal(fixed))
	assert.Equal(t, payload, env.Payload)
	_, err = uuid.Parse(env.EventID)
	assert.NoError(t, err)
}

func TestAMQPPublisherErrors(t *testing.T) {
	t.Run("exchange declaration failure closes the channel", func(t *testing.T) {
		ch := &fakeChannel{declareErr: errors.New("access refused")}

		_, err := NewAMQPPublisher(ch, "reservas.events")
		assert.Error(t, err)
		assert.True(t, ch.closed)
	})

	t.Run("publish failure is returned", func(t *testing.T) {
		ch := &fakeChannel{publishErr: errors.New("channel closed")}
		p, err := NewAMQPPublisher(ch, "reservas.events")
		require.NoError(t, err)

		err = p.Send(context.Background(), reservation.Created{})
		assert.ErrorContains(t, err, "channel closed")
	})

	t.Run("close releases the channel", func(t *testing.T) {
		ch := &fakeChannel{}
		p, err := NewAMQPPublisher(ch, "reservas.events")
		require.NoError(t, err)

		p.Close()
		assert.True(t, ch.closed)
	})
}
