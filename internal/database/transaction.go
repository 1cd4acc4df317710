package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WithTx runs fn inside a database transaction. The transaction is rolled
// back if fn returns an error or panics, and committed otherwise. Because
// pgx.Tx satisfies DB, repositories can be pointed at the transaction
// without changing their code.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx DB) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrConnection, err)
	}
	defer func() {
		// No-op if the transaction already committed.
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
