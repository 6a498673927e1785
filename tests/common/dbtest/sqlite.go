//go:build unit || e2e

package dbtest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"reservas/internal/domain/resource"
	"reservas/internal/infra/db"
	"reservas/internal/infra/sqlite"
	"reservas/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewSQLiteUoW opens a private in-memory store with the schema and the default inventory.
func NewSQLiteUoW(t *testing.T) *sqlite.UoW {
	t.Helper()

	ctx := context.Background()
	sqlDB, err := db.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)

	uow := sqlite.NewUoW(sqlDB, DiscardLogger())
	t.Cleanup(uow.Close)

	require.NoError(t, db.Prepare(ctx, uow, resource.DefaultCatalog().SeedInventory()))
	return uow
}

var _ shared.UnitOfWork = (*sqlite.UoW)(nil)
