package bootstrap

import (
	"context"
	"log/slog"

	"reservas/internal/infra/realtime"
	"reservas/internal/pkg/config"
	"reservas/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewHub,
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.ReservationNotifier)),
		),
	),
)

func NewHub(cfg config.Config, logger *slog.Logger) *realtime.Hub {
	return realtime.NewHub(cfg.Realtime.ClientBuffer, logger)
}

// NewNotifier always includes the SSE hub. AMQP and Redis mirrors are added when configured;
// a mirror that cannot connect is logged and skipped so local viewers keep working.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, hub *realtime.Hub, logger *slog.Logger) *realtime.Fanout {
	sinks := []realtime.Sink{hub}
	var closers []func()

	if cfg.Realtime.AMQPURL != "" {
		publisher, err := realtime.DialAMQP(cfg.Realtime.AMQPURL, cfg.Realtime.AMQPExchange)
		if err != nil {
			logger.Error("AMQP mirror disabled", "error", err.Error())
		} else {
			sinks = append(sinks, publisher)
			closers = append(closers, publisher.Close)
			logger.Info("AMQP mirror enabled", "exchange", cfg.Realtime.AMQPExchange)
		}
	}

	if cfg.Realtime.RedisAddr != "" {
		publisher := realtime.NewRedisPublisher(realtime.NewRedisClient(cfg.Realtime.RedisAddr), cfg.Realtime.RedisChannel)
		sinks = append(sinks, publisher)
		closers = append(closers, publisher.Close)
		logger.Info("Redis mirror enabled", "addr", cfg.Realtime.RedisAddr, "channel", cfg.Realtime.RedisChannel)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			for _, closeFn := range closers {
				closeFn()
			}
			return nil
		},
	})

	return realtime.NewFanout(logger, sinks...)
}
