package sqlite

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS reservas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT NOT NULL DEFAULT '',
		curso TEXT NOT NULL DEFAULT '',
		fecha TEXT NOT NULL DEFAULT '',
		recurso TEXT NOT NULL DEFAULT '',
		hora TEXT NOT NULL DEFAULT '',
		cantidad INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_reservas_slot ON reservas(recurso, fecha, hora);`,
	`CREATE TABLE IF NOT EXISTS inventario (
		recurso TEXT PRIMARY KEY,
		cantidad INTEGER NOT NULL CHECK (cantidad >= 0)
	);`,
}

func migrate(ctx context.Context, db DBTX) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
