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
	"github.com/SscSPs/cashflow_ledger/internal/utils/accounting"
	"github.com/SscSPs/cashflow_ledger/internal/utils/mapping"
	"github.com/SscSPs/cashflow_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayableRepository struct {
	BaseRepository
}

// newPgxPayableRepository creates a new repository for payables.
func newPgxPayableRepository(pool *pgxpool.Pool) *PgxPayableRepository {
	return &PgxPayableRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPayableRepository implements portsrepo.PayableRepositoryFacade
var _ portsrepo.PayableRepositoryFacade = (*PgxPayableRepository)(nil)

var payableColumns = recordColumns{date: "due_date", id: "payable_id", active: "is_active"}

var payableSelect = `
	SELECT payable_id, company_id, description, amount, ` + dateText("due_date") + `, ` + dateText("payment_date") + `,
	       status, late_fees, discount, recurrence, ` + dateText("recurrence_end") + `, is_active,
	       category_id, cost_center_id, supplier_id, payment_method, notes,
	       recurrence_group_id, ` + dateText("recurrence_expanded_through") + `,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM payables`

const payableInsert = `
	INSERT INTO payables (
		payable_id, company_id, description, amount, due_date, payment_date, status,
		late_fees, discount, recurrence, recurrence_end, is_active,
		category_id, cost_center_id, supplier_id, payment_method, notes,
		recurrence_group_id, recurrence_expanded_through,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9, $10, $11::date, $12,
	        $13, $14, $15, $16, $17, $18, $19::date, $20, $21, $22, $23)
	ON CONFLICT DO NOTHING`

func payableInsertArgs(m models.Payable) []any {
	return []any{
		m.PayableID, m.CompanyID, m.Description, m.Amount, m.DueDate, m.PaymentDate, m.Status,
		m.LateFees, m.Discount, m.Recurrence, m.RecurrenceEnd, m.IsActive,
		m.CategoryID, m.CostCenterID, m.SupplierID, m.PaymentMethod, m.Notes,
		m.RecurrenceGroupID, m.RecurrenceExpandedThrough,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func scanPayable(row pgx.Row) (models.Payable, error) {
	var m models.Payable
	err := row.Scan(
		&m.PayableID, &m.CompanyID, &m.Description, &m.Amount, &m.DueDate, &m.PaymentDate,
		&m.Status, &m.LateFees, &m.Discount, &m.Recurrence, &m.RecurrenceEnd, &m.IsActive,
		&m.CategoryID, &m.CostCenterID, &m.SupplierID, &m.PaymentMethod, &m.Notes,
		&m.RecurrenceGroupID, &m.RecurrenceExpandedThrough,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SavePayable inserts a new payable.
func (r *PgxPayableRepository) SavePayable(ctx context.Context, payable domain.Payable) error {
	tag, err := r.Pool.Exec(ctx, payableInsert, payableInsertArgs(mapping.ToModelPayable(payable))...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payable "+payable.PayableID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payable %s: %w", payable.PayableID, apperrors.ErrDuplicate)
	}
	return nil
}

// FindPayableByID retrieves a payable by its ID.
func (r *PgxPayableRepository) FindPayableByID(ctx context.Context, payableID string) (*domain.Payable, error) {
	m, err := scanPayable(r.Pool.QueryRow(ctx, payableSelect+" WHERE payable_id = $1", payableID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payable by ID "+payableID, err)
	}
	p := mapping.ToDomainPayable(m)
	return &p, nil
}

// ListPayables retrieves payables ordered by due date using token-based pagination.
func (r *PgxPayableRepository) ListPayables(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Payable, *string, error) {
	var q listQuery
	if err := q.applyFilter(filter, payableColumns); err != nil {
		return nil, nil, err
	}
	rows, err := r.Pool.Query(ctx, q.build(payableSelect, payableColumns.orderBy(), filter.Limit), q.args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query payables", err)
	}
	defer rows.Close()

	result := []models.Payable{}
	for rows.Next() {
		m, err := scanPayable(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan payable row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating payable rows", err)
	}

	payables := mapping.ToDomainPayableSlice(result)
	next := pagination.NextToken(payables, filter.Limit, func(p domain.Payable) pagination.Cursor {
		return pagination.Cursor{Date: p.DueDate, CreatedAt: p.CreatedAt, ID: p.PayableID}
	})
	return payables, next, nil
}

// UpdatePayable overwrites the editable fields of a payable.
func (r *PgxPayableRepository) UpdatePayable(ctx context.Context, payable domain.Payable) error {
	m := mapping.ToModelPayable(payable)
	query := `
		UPDATE payables
		SET description = $2, amount = $3, due_date = $4::date, late_fees = $5, discount = $6,
		    recurrence = $7, recurrence_end = $8::date, category_id = $9, cost_center_id = $10,
		    supplier_id = $11, payment_method = $12, notes = $13,
		    last_updated_at = $14, last_updated_by = $15
		WHERE payable_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.PayableID, m.Description, m.Amount, m.DueDate, m.LateFees, m.Discount,
		m.Recurrence, m.RecurrenceEnd, m.CategoryID, m.CostCenterID,
		m.SupplierID, m.PaymentMethod, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payable "+m.PayableID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkPayablePaid settles an open payable.
func (r *PgxPayableRepository) MarkPayablePaid(ctx context.Context, payable domain.Payable) error {
	m := mapping.ToModelPayable(payable)
	query := `
		UPDATE payables
		SET status = $2, payment_date = $3::date, late_fees = $4, discount = $5, payment_method = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE payable_id = $1 AND status <> 'paid'`
	tag, err := r.Pool.Exec(ctx, query,
		m.PayableID, m.Status, m.PaymentDate, m.LateFees, m.Discount, m.PaymentMethod,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark payable paid "+m.PayableID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewValidationError("payable %s is missing or already paid", m.PayableID)
	}
	return nil
}

// DeactivatePayable soft-deletes a payable.
func (r *PgxPayableRepository) DeactivatePayable(ctx context.Context, payableID string, userID string, at time.Time) error {
	return deactivate(ctx, r.Pool, "payables", "payable_id", payableID, userID, at)
}

// SaveRecurrenceInstances inserts the instances generated from originID and
// moves its watermark, holding a row lock on the origin for the duration.
func (r *PgxPayableRepository) SaveRecurrenceInstances(ctx context.Context, originID string, instances []domain.Payable) (int, error) {
	if len(instances) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var watermark *string
	err = tx.QueryRow(ctx,
		`SELECT `+dateText("recurrence_expanded_through")+` FROM payables WHERE payable_id = $1 FOR UPDATE`,
		originID,
	).Scan(&watermark)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to lock recurrence origin "+originID, err)
	}

	batch := &pgx.Batch{}
	for _, inst := range instances {
		if watermark != nil && inst.DueDate <= *watermark {
			continue
		}
		batch.Queue(payableInsert, payableInsertArgs(mapping.ToModelPayable(inst))...)
	}

	created := 0
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			tag, err := br.Exec()
			if err != nil {
				br.Close()
				return 0, apperrors.NewAppError(500, "failed to insert recurrence instance for "+originID, err)
			}
			created += int(tag.RowsAffected())
		}
		if err := br.Close(); err != nil {
			return 0, apperrors.NewAppError(500, "failed to execute recurrence batch for "+originID, err)
		}
	}

	last := accounting.LastDueDate(instances)
	if watermark == nil || last > *watermark {
		_, err = tx.Exec(ctx, `
			UPDATE payables
			SET recurrence_expanded_through = $2::date,
			    recurrence_group_id = COALESCE(recurrence_group_id, payable_id)
			WHERE payable_id = $1`, originID, last)
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to advance recurrence watermark for "+originID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return created, nil
}
