package services

import (
	"context"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
)

// ManualEntrySvc records free-form cash movements
type ManualEntrySvc interface {
	CreateManualEntry(ctx context.Context, req dto.CreateManualEntryRequest, creatorUserID string) (*domain.ManualEntry, error)
	ListManualEntries(ctx context.Context, params dto.ListRecordsParams) (*dto.ListManualEntriesResponse, error)
}

// BalanceAdjustmentSvc records opening and closing balances
type BalanceAdjustmentSvc interface {
	CreateBalanceAdjustment(ctx context.Context, req dto.CreateBalanceAdjustmentRequest, creatorUserID string) (*domain.BalanceAdjustment, error)
	ListBalanceAdjustments(ctx context.Context, companyID, from, to string) ([]domain.BalanceAdjustment, error)
}

// CategorySvc manages categories and their DRE tags
type CategorySvc interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	ListCategories(ctx context.Context, companyID string) ([]domain.Category, error)
}
