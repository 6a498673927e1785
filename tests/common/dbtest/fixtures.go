//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"reservas/internal/domain/reservation"
	"reservas/internal/domain/resource"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestReservation(t *testing.T, db DBLike, res reservation.Reservation) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO reservas (nombre, curso, fecha, recurso, hora, cantidad)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		res.Nombre, res.Curso, res.Fecha, res.Recurso, res.Hora, res.Cantidad,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func SetInventoryCount(t *testing.T, db DBLike, recurso string, cantidad int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO inventario (recurso, cantidad) VALUES ($1, $2)
		 ON CONFLICT (recurso) DO UPDATE SET cantidad = EXCLUDED.cantidad`,
		recurso, cantidad)
	require.NoError(t, err)
}

func InventoryCount(t *testing.T, db DBLike, recurso string) int {
	t.Helper()

	var cantidad int
	err := db.QueryRow(context.Background(), `SELECT cantidad FROM inventario WHERE recurso = $1`, recurso).Scan(&cantidad)
	require.NoError(t, err)

	return cantidad
}

func CountReservations(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT COUNT(*) FROM reservas`).Scan(&n)
	require.NoError(t, err)

	return n
}

// inserts the startup inventory rows
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for _, item := range resource.DefaultCatalog().SeedInventory() {
		if _, err := pool.Exec(ctx,
			`INSERT INTO inventario (recurso, cantidad) VALUES ($1, $2) ON CONFLICT (recurso) DO NOTHING`,
			item.Recurso, item.Cantidad,
		); err != nil {
			return err
		}
	}

	return nil
}

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, `TRUNCATE reservas, inventario RESTART IDENTITY CASCADE;`); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
