package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// RowsInterface wraps pgx.Rows for mocking.
type RowsInterface interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

type rowsWrapper struct {
	rows pgx.Rows
}

// NewRowsWrapper adapts pgx.Rows to RowsInterface.
func NewRowsWrapper(rows pgx.Rows) RowsInterface {
	return &rowsWrapper{rows: rows}
}

func (r *rowsWrapper) Next() bool             { return r.rows.Next() }
func (r *rowsWrapper) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *rowsWrapper) Close()                 { r.rows.Close() }
func (r *rowsWrapper) Err() error             { return r.rows.Err() }

// PostgreSQLClient defines the interface for PostgreSQL operations.
// Exec, Query and QueryRow join the transaction stored in ctx by WithTx.
type PostgreSQLClient interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (RowsInterface, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row

	Begin(ctx context.Context) (pgx.Tx, error)

	Ping(ctx context.Context) error
	Close()
}
