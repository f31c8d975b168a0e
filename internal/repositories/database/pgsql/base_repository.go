package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// listQuery accumulates WHERE conditions and their positional arguments.
type listQuery struct {
	conds []string
	args  []any
}

// arg binds v and returns its placeholder.
func (q *listQuery) arg(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

func (q *listQuery) where(cond string) {
	q.conds = append(q.conds, cond)
}

// build assembles base + WHERE + ORDER BY + optional LIMIT.
func (q *listQuery) build(base, orderBy string, limit int) string {
	var sb strings.Builder
	sb.WriteString(base)
	if len(q.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.conds, " AND "))
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)
	if limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(q.arg(limit))
	}
	return sb.String()
}

// recordColumns names the columns a ListFilter applies to.
type recordColumns struct {
	date   string
	id     string
	active string // empty when the table has no soft delete
}

// applyFilter translates a ListFilter into conditions. Pages are ordered by
// (date, created_at, id) ascending and the token carries the last row's key.
func (q *listQuery) applyFilter(f portsrepo.ListFilter, cols recordColumns) error {
	if f.CompanyID != "" {
		q.where("company_id = " + q.arg(f.CompanyID))
	}
	if f.From != "" {
		q.where(cols.date + " >= " + q.arg(f.From) + "::date")
	}
	if f.To != "" {
		q.where(cols.date + " <= " + q.arg(f.To) + "::date")
	}
	if f.ActiveOnly && cols.active != "" {
		q.where(cols.active)
	}
	if f.NextToken != nil && *f.NextToken != "" {
		cursor, err := pagination.DecodeToken(*f.NextToken)
		if err != nil {
			return apperrors.NewValidationError("invalid nextToken: %v", err)
		}
		q.where("(" + cols.date + ", created_at, " + cols.id + ") > (" +
			q.arg(cursor.Date) + "::date, " + q.arg(cursor.CreatedAt) + ", " + q.arg(cursor.ID) + ")")
	}
	return nil
}

func (c recordColumns) orderBy() string {
	return c.date + ", created_at, " + c.id
}

// dateText renders a date column as YYYY-MM-DD text for scanning into strings.
func dateText(col string) string {
	return "to_char(" + col + ", 'YYYY-MM-DD')"
}
