// Package sql adapts the factory contracts to database/sql handles.
//
// Factories for SQL backends implement factory.Creator against the
// ExecQuerier surface rather than *sql.DB directly, so the same factory
// runs against a database, a transaction a test later rolls back, or a
// single checked-out connection.
package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-openapi/inflect"

	"github.com/syssam/factory/dialect"
)

// ExecQuerier is the minimal surface a factory needs from a database/sql
// handle. It is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ ExecQuerier = (*sql.DB)(nil)
	_ ExecQuerier = (*sql.Tx)(nil)
	_ ExecQuerier = (*sql.Conn)(nil)
)

// Open opens a database handle for the given dialect. The dialect name is
// also the name the corresponding driver registers with database/sql, so
// the caller must import the driver: lib/pq for dialect.Postgres,
// go-sql-driver/mysql for dialect.MySQL, modernc.org/sqlite for
// dialect.SQLite (imported by this package already).
func Open(name, dsn string) (*sql.DB, error) {
	switch name {
	case dialect.Postgres, dialect.MySQL, dialect.SQLite:
	default:
		return nil, fmt.Errorf("sql: unsupported dialect %q", name)
	}
	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql: open %s: %w", name, err)
	}
	return db, nil
}

// Table returns the conventional table name for an entity type name:
// pluralized snake_case ("UserProfile" becomes "user_profiles").
func Table(name string) string {
	return inflect.Pluralize(inflect.Underscore(name))
}

// Column returns the conventional column name for a Go field name:
// snake_case ("CreatedAt" becomes "created_at").
func Column(name string) string {
	return inflect.Underscore(name)
}
