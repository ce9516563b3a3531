// Package factory provides the shared contracts for test data factories:
// helpers that construct entity records for automated tests and persist
// them into a backing store, materializing foreign-key dependencies on
// demand.
//
// The package defines two small, composable contracts. The Creator
// interface is the creation contract: a factory value persists itself
// through a borrowed store handle and returns the stored entity. The
// sentinel contract lives in the sentinel subpackage: a per-type marker
// value meaning "no explicit value was supplied; auto-resolve this".
//
// # Creation Contract
//
// Creator is generic over the pool/handle type, so the same factory type
// can be implemented once per backend without conflict:
//
//	type UserFactory struct {
//	    TenantID sentinel.Int64
//	    Email    sentinel.String
//	}
//
//	func (f UserFactory) Create(ctx context.Context, db *sql.DB) (User, error) {
//	    var u User
//	    err := db.QueryRowContext(ctx,
//	        "INSERT INTO users (tenant_id, email) VALUES ($1, $2) RETURNING id, tenant_id, email",
//	        int64(f.TenantID), string(f.Email),
//	    ).Scan(&u.ID, &u.TenantID, &u.Email)
//	    if err != nil {
//	        return User{}, factory.NewCreateError("user", err)
//	    }
//	    return u, nil
//	}
//
// A factory value is one-shot: it is consumed by Create and must not be
// reused afterwards.
//
// # Sentinel Interaction
//
// Before persisting, a factory's build step inspects each foreign-key
// field. Fields left at their type's sentinel are resolved by creating
// the dependency through its own factory. Resolve is the per-field helper
// for that protocol:
//
//	tenantID, err := factory.Resolve(ctx, db, f.TenantID,
//	    func(ctx context.Context, db *sql.DB) (sentinel.Int64, error) {
//	        t, err := TenantFactory{}.Create(ctx, db)
//	        if err != nil {
//	            return 0, err
//	        }
//	        return sentinel.Int64(t.ID), nil
//	    })
//
// Dependencies resolve strictly before the dependent create begins, on
// the calling goroutine; the chain short-circuits on the first failure.
//
// # Backends
//
// The contracts are handle-agnostic. The dialect/sql subpackage adapts
// database/sql handles and classifies driver errors; dialect/postgres
// does the same for pgx connection pools. Any other handle type works
// directly as the Creator type parameter.
package factory
