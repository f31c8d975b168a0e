package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_ledger/internal/models"
	"github.com/SscSPs/cashflow_ledger/internal/utils/mapping"
	"github.com/SscSPs/cashflow_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository stores manual entries, balance adjustments and categories.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.ManualEntryRepository       = (*PgxLedgerRepository)(nil)
	_ portsrepo.BalanceAdjustmentRepository = (*PgxLedgerRepository)(nil)
	_ portsrepo.CategoryRepository          = (*PgxLedgerRepository)(nil)
)

var manualEntryColumns = recordColumns{date: "entry_date", id: "entry_id"}

// SaveManualEntry inserts a manual entry. Entries are never updated.
func (r *PgxLedgerRepository) SaveManualEntry(ctx context.Context, entry domain.ManualEntry) error {
	m := mapping.ToModelManualEntry(entry)
	query := `
		INSERT INTO manual_entries (
			entry_id, company_id, entry_date, competence_date, type, kind, description, category,
			subcategory, amount, gross_amount, fees, payment_method, account, status,
			document_ref, cost_center, recurrence, due_date, actual_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3::date, $4::date, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19::date, $20::date, $21, $22, $23, $24)`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.CompanyID, m.EntryDate, m.CompetenceDate, m.Type, m.Kind, m.Description, m.Category,
		m.Subcategory, m.Amount, m.GrossAmount, m.Fees, m.PaymentMethod, m.Account, m.Status,
		m.DocumentRef, m.CostCenter, m.Recurrence, m.DueDate, m.ActualDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert manual entry "+m.EntryID, err)
	}
	return nil
}

// ListManualEntries retrieves manual entries ordered by entry date using token-based pagination.
func (r *PgxLedgerRepository) ListManualEntries(ctx context.Context, filter portsrepo.ListFilter) ([]domain.ManualEntry, *string, error) {
	var q listQuery
	if err := q.applyFilter(filter, manualEntryColumns); err != nil {
		return nil, nil, err
	}
	base := `
		SELECT entry_id, company_id, ` + dateText("entry_date") + `, ` + dateText("competence_date") + `,
		       type, kind, description, category, subcategory, amount, gross_amount, fees,
		       payment_method, account, status, document_ref, cost_center, recurrence,
		       ` + dateText("due_date") + `, ` + dateText("actual_date") + `,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM manual_entries`
	rows, err := r.Pool.Query(ctx, q.build(base, manualEntryColumns.orderBy(), filter.Limit), q.args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query manual entries", err)
	}
	defer rows.Close()

	entries := []domain.ManualEntry{}
	for rows.Next() {
		var m models.ManualEntry
		if err := rows.Scan(
			&m.EntryID, &m.CompanyID, &m.EntryDate, &m.CompetenceDate,
			&m.Type, &m.Kind, &m.Description, &m.Category, &m.Subcategory, &m.Amount, &m.GrossAmount, &m.Fees,
			&m.PaymentMethod, &m.Account, &m.Status, &m.DocumentRef, &m.CostCenter, &m.Recurrence,
			&m.DueDate, &m.ActualDate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan manual entry row", err)
		}
		entries = append(entries, mapping.ToDomainManualEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating manual entry rows", err)
	}

	next := pagination.NextToken(entries, filter.Limit, func(e domain.ManualEntry) pagination.Cursor {
		return pagination.Cursor{Date: e.Date, CreatedAt: e.CreatedAt, ID: e.EntryID}
	})
	return entries, next, nil
}

// SaveBalanceAdjustment inserts a balance adjustment.
func (r *PgxLedgerRepository) SaveBalanceAdjustment(ctx context.Context, adjustment domain.BalanceAdjustment) error {
	m := mapping.ToModelBalanceAdjustment(adjustment)
	query := `
		INSERT INTO balance_adjustments (
			adjustment_id, company_id, adjustment_date, type, description, amount, account,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.Pool.Exec(ctx, query,
		m.AdjustmentID, m.CompanyID, m.AdjustmentDate, m.Type, m.Description, m.Amount, m.Account,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert balance adjustment "+m.AdjustmentID, err)
	}
	return nil
}

// ListBalanceAdjustments returns every adjustment matching the filter's
// company and date range, oldest first.
func (r *PgxLedgerRepository) ListBalanceAdjustments(ctx context.Context, filter portsrepo.ListFilter) ([]domain.BalanceAdjustment, error) {
	var q listQuery
	scope := portsrepo.ListFilter{CompanyID: filter.CompanyID, From: filter.From, To: filter.To}
	cols := recordColumns{date: "adjustment_date", id: "adjustment_id"}
	if err := q.applyFilter(scope, cols); err != nil {
		return nil, err
	}
	base := `
		SELECT adjustment_id, company_id, ` + dateText("adjustment_date") + `, type, description, amount, account,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM balance_adjustments`
	rows, err := r.Pool.Query(ctx, q.build(base, cols.orderBy(), 0), q.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balance adjustments", err)
	}
	defer rows.Close()

	adjustments := []domain.BalanceAdjustment{}
	for rows.Next() {
		var m models.BalanceAdjustment
		if err := rows.Scan(
			&m.AdjustmentID, &m.CompanyID, &m.AdjustmentDate, &m.Type, &m.Description, &m.Amount, &m.Account,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance adjustment row", err)
		}
		adjustments = append(adjustments, mapping.ToDomainBalanceAdjustment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance adjustment rows", err)
	}
	return adjustments, nil
}

// SaveCategory inserts a category. Names are unique per company.
func (r *PgxLedgerRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (category_id, company_id, name, kind, dre_category,
		                        created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id, name) DO NOTHING`
	tag, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.CompanyID, m.Name, m.Kind, m.DRECategory,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert category "+m.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %q: %w", m.Name, apperrors.ErrDuplicate)
	}
	return nil
}

// ListCategories returns the categories of a company ordered by name.
// An empty companyID lists every category.
func (r *PgxLedgerRepository) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	var q listQuery
	if companyID != "" {
		q.where("company_id = " + q.arg(companyID))
	}
	base := `
		SELECT category_id, company_id, name, kind, dre_category,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM categories`
	rows, err := r.Pool.Query(ctx, q.build(base, "name, category_id", 0), q.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(
			&m.CategoryID, &m.CompanyID, &m.Name, &m.Kind, &m.DRECategory,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return categories, nil
}
