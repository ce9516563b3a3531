package factory

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/factory/sentinel"
)

// Creator is the creation contract implemented by factory values.
//
// The Pool type parameter is the backing-store handle the factory persists
// through: *sql.DB, *pgxpool.Pool, a document-store client, or any custom
// connection type. The handle is borrowed for the duration of the call and
// never closed or retained by the factory. A factory type fixes a single
// Entity type per implementation, and may be implemented once per backend
// without conflict.
//
// Create performs at least one round-trip to the store. On success it
// returns the persisted entity, including store-generated fields such as
// auto-increment identifiers. On failure the underlying store error is
// propagated, never swallowed or retried. The receiver is consumed: a
// factory value must not be reused after Create returns.
type Creator[Pool, Entity any] interface {
	Create(ctx context.Context, pool Pool) (Entity, error)
}

// CreateFunc is a function adapter for the Creator interface.
type CreateFunc[Pool, Entity any] func(ctx context.Context, pool Pool) (Entity, error)

// Create calls f(ctx, pool).
func (f CreateFunc[Pool, Entity]) Create(ctx context.Context, pool Pool) (Entity, error) {
	return f(ctx, pool)
}

// Resolve substitutes a sentinel-valued field with an auto-created
// dependency. If v is not its type's sentinel it is returned unchanged and
// create is never called. Otherwise create is invoked on the same handle to
// materialize the dependency, and its result (typically the new row's
// identifier) replaces the sentinel.
//
// Resolve runs inline on the calling goroutine: the dependency is fully
// created before the dependent create begins. Errors short-circuit the
// chain and surface unchanged.
func Resolve[T sentinel.Value[T], Pool any](ctx context.Context, pool Pool, v T, create func(context.Context, Pool) (T, error)) (T, error) {
	if !v.IsSentinel() {
		return v, nil
	}
	return create(ctx, pool)
}

// CreateAll creates entities from independent factories concurrently on a
// shared handle. Results are returned in the order the factories were
// given. No ordering is guaranteed between the creations themselves; the
// factories must not depend on each other. The first failure cancels the
// remaining creations and is returned.
func CreateAll[Pool, Entity any](ctx context.Context, pool Pool, factories ...Creator[Pool, Entity]) ([]Entity, error) {
	entities := make([]Entity, len(factories))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range factories {
		i, f := i, f
		g.Go(func() error {
			e, err := f.Create(ctx, pool)
			if err != nil {
				return err
			}
			entities[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entities, nil
}
