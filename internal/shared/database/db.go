package database

import (
	"context"
	"database/sql"

	_ "embed"
)

// Schema holds the DDL for the whole store. Applied by cmd/seed and by
// integration environments; production deployments run it once at provision.
//
//go:embed schema.sql
var Schema string

// DBTX is satisfied by both *sql.DB and *sql.Tx, so every repository can be
// rebound onto an open transaction via its WithTx method.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
