// Package uow wraps the store's transaction runner and defers side
// effects (cache drops, pub/sub notifications) until after commit, so a
// rolled-back booking never invalidates anything.
package uow

import (
	"context"

	"github.com/jackc/pgx/v5"

	postgres "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/postgres"
)

// AfterCommit runs once the surrounding transaction has committed.
type AfterCommit func(ctx context.Context)

type UoW struct {
	store *postgres.Store
}

func NewUoW(store *postgres.Store) *UoW {
	return &UoW{store: store}
}

// Do runs fn inside a transaction with the store's default options.
// Hooks registered through after are executed only on a successful
// commit, in registration order.
func (u *UoW) Do(
	ctx context.Context,
	fn func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error,
) error {
	return u.DoWithOpts(ctx, nil, fn)
}

// DoWithOpts is Do with explicit transaction options.
func (u *UoW) DoWithOpts(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error,
) error {
	var hooks []AfterCommit

	err := u.store.RunTx(ctx, opts, func(ctx context.Context, tx postgres.DB) error {
		return fn(ctx, tx, func(h AfterCommit) {
			hooks = append(hooks, h)
		})
	})
	if err != nil {
		return err
	}

	for _, h := range hooks {
		h(ctx)
	}

	return nil
}
