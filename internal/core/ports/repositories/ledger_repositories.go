package repositories

import (
	"context"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
)

// ManualEntryRepository persists free-form cash movements. Entries are
// immutable, so there is no update.
type ManualEntryRepository interface {
	SaveManualEntry(ctx context.Context, entry domain.ManualEntry) error
	ListManualEntries(ctx context.Context, filter ListFilter) ([]domain.ManualEntry, *string, error)
}

// BalanceAdjustmentRepository persists opening and closing balance figures.
type BalanceAdjustmentRepository interface {
	SaveBalanceAdjustment(ctx context.Context, adjustment domain.BalanceAdjustment) error
	// ListBalanceAdjustments ignores ActiveOnly and pagination fields of the filter.
	ListBalanceAdjustments(ctx context.Context, filter ListFilter) ([]domain.BalanceAdjustment, error)
}

// CategoryRepository persists categories and their DRE tags.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	ListCategories(ctx context.Context, companyID string) ([]domain.Category, error)
}
