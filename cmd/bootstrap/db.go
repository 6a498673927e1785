package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reservas/internal/domain/resource"
	"reservas/internal/infra/db"
	"reservas/internal/infra/postgres"
	"reservas/internal/infra/sqlite"
	"reservas/internal/pkg/config"
	"reservas/internal/usecase/shared"

	"go.uber.org/fx"
)

const storeOpenTimeout = 15 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		resource.DefaultCatalog,
		NewUnitOfWork,
	),
	fx.Invoke(PrepareStore),
)

func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
	defer cancel()

	var uow shared.UnitOfWork
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		pool, _, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		uow = postgres.NewUoW(pool, logger)
	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.DB.SQLitePath)
		if err != nil {
			return nil, err
		}
		uow = sqlite.NewUoW(sqlDB, logger)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	logger.Info("store opened", "driver", cfg.DB.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			uow.Close()
			return nil
		},
	})

	return uow, nil
}

// PrepareStore runs before the server starts accepting connections.
func PrepareStore(uow shared.UnitOfWork, catalog *resource.Catalog, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
	defer cancel()

	if err := db.Prepare(ctx, uow, catalog.SeedInventory()); err != nil {
		return err
	}
	logger.Info("store schema ready")
	return nil
}
