// Package postgres adapts the factory contracts to pgx connection pools.
//
// Factories for this backend implement factory.Creator against
// *pgxpool.Pool (or the narrower Querier surface) and translate driver
// errors through ConvertError:
//
//	func (f UserFactory) Create(ctx context.Context, pool *pgxpool.Pool) (User, error) {
//	    var u User
//	    err := pool.QueryRow(ctx,
//	        "INSERT INTO users (tenant_id, email) VALUES ($1, $2) RETURNING id, tenant_id, email",
//	        int64(f.TenantID), string(f.Email),
//	    ).Scan(&u.ID, &u.TenantID, &u.Email)
//	    if err != nil {
//	        return User{}, postgres.ConvertError("user", err)
//	    }
//	    return u, nil
//	}
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syssam/factory"
)

// SQLSTATE codes for integrity constraint violations (class 23).
const (
	integrityViolationClass = "23"
	uniqueViolation         = "23505"
	foreignKeyViolation     = "23503"
	checkViolation          = "23514"
)

// Querier is the minimal surface a factory needs from a pgx handle. It is
// satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx, so a test suite can run
// its factories inside a transaction it later rolls back.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

// Open opens a pgx connection pool for the given DSN. The pool is the
// handle factories for this backend create through; it is safe for
// concurrent use and owned by the caller.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open pool: %w", err)
	}
	return pool, nil
}

// ConvertError translates a pgx driver error into the factory error
// taxonomy. Integrity constraint violations (SQLSTATE class 23) become
// factory.ConstraintError; any other failure is wrapped in
// factory.CreateError. A nil error stays nil.
func ConvertError(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case isConstraintViolation(err):
		return factory.NewConstraintError(entity, err)
	default:
		return factory.NewCreateError(entity, err)
	}
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func isConstraintViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && strings.HasPrefix(pgErr.Code, integrityViolationClass)
}

// IsUniqueViolation reports whether the error resulted from a uniqueness
// constraint violation.
func IsUniqueViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == uniqueViolation
}

// IsForeignKeyViolation reports whether the error resulted from a
// foreign-key constraint violation.
func IsForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == foreignKeyViolation
}

// IsCheckViolation reports whether the error resulted from a check
// constraint violation.
func IsCheckViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == checkViolation
}
