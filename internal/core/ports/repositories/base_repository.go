package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by repositories that can run several
// statements in one database transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is safe to call after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
