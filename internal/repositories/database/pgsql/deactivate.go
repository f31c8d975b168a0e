package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// deactivate clears is_active on one row. A missing row is ErrNotFound and an
// already inactive one is ErrValidation.
func deactivate(ctx context.Context, pool *pgxpool.Pool, table, idColumn, id, userID string, at time.Time) error {
	query := `UPDATE ` + table + ` SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE ` + idColumn + ` = $1 AND is_active`
	tag, err := pool.Exec(ctx, query, id, at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate "+id+" in "+table, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = pool.QueryRow(ctx, `SELECT TRUE FROM `+table+` WHERE `+idColumn+` = $1`, id).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to check "+id+" in "+table, err)
	}
	return apperrors.NewValidationError("%s is already inactive", id)
}
