package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"reservas/internal/infra"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func kindOf(err error) infra.RepositoryErrorKind {
	if errors.Is(err, sql.ErrNoRows) {
		return infra.KindNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return infra.KindDuplicateKey
	}
	return infra.KindDBFailure
}
