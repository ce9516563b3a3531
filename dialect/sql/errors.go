package sql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"

	"github.com/syssam/factory"
)

// PostgreSQL SQLSTATE codes (class 23, integrity constraint violation).
const (
	pgIntegrityViolationClass = "23"
	pgUniqueViolation         = "23505"
	pgForeignKeyViolation     = "23503"
	pgCheckViolation          = "23514"
)

// MySQL error numbers for constraint violations.
const (
	mysqlDuplicateEntry   = 1062
	mysqlNoReferencedRow  = 1216 // Cannot add or update a child row (old servers)
	mysqlRowIsReferenced  = 1217 // Cannot delete or update a parent row (old servers)
	mysqlRowIsReferenced2 = 1451
	mysqlNoReferencedRow2 = 1452
	mysqlCheckViolated    = 3819
)

// SQLite result codes. The primary constraint code is 19; extended codes
// carry it in the low byte.
const (
	sqliteConstraint           = 19
	sqliteConstraintCheck      = 275
	sqliteConstraintForeignKey = 787
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// ConvertError translates a driver error into the factory error taxonomy.
// Recognized constraint violations become factory.ConstraintError; any
// other failure is wrapped in factory.CreateError. The driver error stays
// reachable through Unwrap in both cases. A nil error stays nil.
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

// sqlStater is implemented by pgx-stdlib and lib/pq errors.
type sqlStater interface {
	SQLState() string
}

// sqlState extracts the SQLSTATE code from the error chain, if any.
func sqlState(err error) (string, bool) {
	for err != nil {
		if e, ok := err.(sqlStater); ok {
			return e.SQLState(), true
		}
		err = errors.Unwrap(err)
	}
	return "", false
}

func isConstraintViolation(err error) bool {
	if code, ok := sqlState(err); ok {
		return strings.HasPrefix(code, pgIntegrityViolationClass)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return strings.HasPrefix(string(pqErr.Code), pgIntegrityViolationClass)
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlNoReferencedRow, mysqlRowIsReferenced,
			mysqlRowIsReferenced2, mysqlNoReferencedRow2, mysqlCheckViolated:
			return true
		}
		return false
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqliteConstraint
	}
	// Fallback for drivers that surface plain error strings.
	return containsAny(err.Error(),
		"violates unique constraint",      // Postgres
		"violates foreign key constraint", // Postgres
		"violates check constraint",       // Postgres
		"Error 1062",                      // MySQL
		"Error 1452",                      // MySQL
		"constraint failed",               // SQLite (UNIQUE/FOREIGN KEY/CHECK ...)
	)
}

// IsUniqueViolation reports whether the error resulted from a uniqueness
// constraint violation, e.g. a duplicate value in a unique index.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := sqlState(err); ok && code == pgUniqueViolation {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return true
		}
	}
	return containsAny(err.Error(),
		"violates unique constraint",
		"Error 1062",
		"UNIQUE constraint failed",
	)
}

// IsForeignKeyViolation reports whether the error resulted from a
// foreign-key constraint violation, e.g. a missing parent row.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := sqlState(err); ok && code == pgForeignKeyViolation {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlNoReferencedRow, mysqlRowIsReferenced,
			mysqlRowIsReferenced2, mysqlNoReferencedRow2:
			return true
		}
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code() == sqliteConstraintForeignKey {
		return true
	}
	return containsAny(err.Error(),
		"violates foreign key constraint",
		"Error 1451",
		"Error 1452",
		"FOREIGN KEY constraint failed",
	)
}

// IsCheckViolation reports whether the error resulted from a check
// constraint violation.
func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := sqlState(err); ok && code == pgCheckViolation {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgCheckViolation {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlCheckViolated {
		return true
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code() == sqliteConstraintCheck {
		return true
	}
	return containsAny(err.Error(),
		"violates check constraint",
		"Error 3819",
		"CHECK constraint failed",
	)
}

// containsAny returns true if s contains any of the substrings.
func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
