package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_ledger/internal/models"
	"github.com/SscSPs/cashflow_ledger/internal/utils/mapping"
	"github.com/SscSPs/cashflow_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReceivableRepository struct {
	BaseRepository
}

// newPgxReceivableRepository creates a new repository for receivables.
func newPgxReceivableRepository(pool *pgxpool.Pool) *PgxReceivableRepository {
	return &PgxReceivableRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceivableRepositoryFacade = (*PgxReceivableRepository)(nil)

var receivableColumns = recordColumns{date: "due_date", id: "receivable_id", active: "is_active"}

var receivableSelect = `
	SELECT receivable_id, company_id, description, amount, ` + dateText("due_date") + `, ` + dateText("received_date") + `,
	       status, discount, payment_method, recurrence, ` + dateText("recurrence_end") + `, is_active,
	       category_id, client_id, notes,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM receivables`

func scanReceivable(row pgx.Row) (models.Receivable, error) {
	var m models.Receivable
	err := row.Scan(
		&m.ReceivableID, &m.CompanyID, &m.Description, &m.Amount, &m.DueDate, &m.ReceivedDate,
		&m.Status, &m.Discount, &m.PaymentMethod, &m.Recurrence, &m.RecurrenceEnd, &m.IsActive,
		&m.CategoryID, &m.ClientID, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveReceivable inserts a new receivable.
func (r *PgxReceivableRepository) SaveReceivable(ctx context.Context, receivable domain.Receivable) error {
	m := mapping.ToModelReceivable(receivable)
	query := `
		INSERT INTO receivables (
			receivable_id, company_id, description, amount, due_date, received_date, status,
			discount, payment_method, recurrence, recurrence_end, is_active,
			category_id, client_id, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9, $10, $11::date, $12,
		        $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (receivable_id) DO NOTHING`
	tag, err := r.Pool.Exec(ctx, query,
		m.ReceivableID, m.CompanyID, m.Description, m.Amount, m.DueDate, m.ReceivedDate, m.Status,
		m.Discount, m.PaymentMethod, m.Recurrence, m.RecurrenceEnd, m.IsActive,
		m.CategoryID, m.ClientID, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert receivable "+m.ReceivableID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("receivable %s: %w", m.ReceivableID, apperrors.ErrDuplicate)
	}
	return nil
}

// FindReceivableByID retrieves a receivable by its ID.
func (r *PgxReceivableRepository) FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	m, err := scanReceivable(r.Pool.QueryRow(ctx, receivableSelect+" WHERE receivable_id = $1", receivableID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find receivable by ID "+receivableID, err)
	}
	d := mapping.ToDomainReceivable(m)
	return &d, nil
}

// ListReceivables retrieves receivables ordered by due date using token-based pagination.
func (r *PgxReceivableRepository) ListReceivables(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Receivable, *string, error) {
	var q listQuery
	if err := q.applyFilter(filter, receivableColumns); err != nil {
		return nil, nil, err
	}
	rows, err := r.Pool.Query(ctx, q.build(receivableSelect, receivableColumns.orderBy(), filter.Limit), q.args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query receivables", err)
	}
	defer rows.Close()

	result := []models.Receivable{}
	for rows.Next() {
		m, err := scanReceivable(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan receivable row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating receivable rows", err)
	}

	receivables := mapping.ToDomainReceivableSlice(result)
	next := pagination.NextToken(receivables, filter.Limit, func(rc domain.Receivable) pagination.Cursor {
		return pagination.Cursor{Date: rc.DueDate, CreatedAt: rc.CreatedAt, ID: rc.ReceivableID}
	})
	return receivables, next, nil
}

// UpdateReceivable overwrites the editable fields of a receivable.
func (r *PgxReceivableRepository) UpdateReceivable(ctx context.Context, receivable domain.Receivable) error {
	m := mapping.ToModelReceivable(receivable)
	query := `
		UPDATE receivables
		SET description = $2, amount = $3, due_date = $4::date, discount = $5,
		    recurrence = $6, recurrence_end = $7::date, category_id = $8, client_id = $9, notes = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE receivable_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.ReceivableID, m.Description, m.Amount, m.DueDate, m.Discount,
		m.Recurrence, m.RecurrenceEnd, m.CategoryID, m.ClientID, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update receivable "+m.ReceivableID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkReceivableReceived settles an open receivable.
func (r *PgxReceivableRepository) MarkReceivableReceived(ctx context.Context, receivable domain.Receivable) error {
	m := mapping.ToModelReceivable(receivable)
	query := `
		UPDATE receivables
		SET status = $2, received_date = $3::date, discount = $4, payment_method = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE receivable_id = $1 AND status <> 'received'`
	tag, err := r.Pool.Exec(ctx, query,
		m.ReceivableID, m.Status, m.ReceivedDate, m.Discount, m.PaymentMethod,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark receivable received "+m.ReceivableID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewValidationError("receivable %s is missing or already received", m.ReceivableID)
	}
	return nil
}

// DeactivateReceivable soft-deletes a receivable.
func (r *PgxReceivableRepository) DeactivateReceivable(ctx context.Context, receivableID string, userID string, at time.Time) error {
	return deactivate(ctx, r.Pool, "receivables", "receivable_id", receivableID, userID, at)
}
