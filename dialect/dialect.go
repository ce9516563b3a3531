// Package dialect declares the backend identifiers shared by the factory
// adapter packages.
//
// The factory contracts themselves are generic over the store-handle type
// and never inspect these constants; they exist for the adapters that open
// handles and classify driver errors:
//
//   - dialect/sql: database/sql handles (lib/pq, go-sql-driver/mysql,
//     modernc.org/sqlite)
//   - dialect/postgres: pgx connection pools
package dialect

// Backend identifiers.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)
