package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_ledger/internal/utils/accounting"
)

// recordLoader reads a company's full record history for one computation.
// Nothing is cached between calls.
type recordLoader struct {
	repos portsrepo.RepositoryProvider
}

func (l recordLoader) load(ctx context.Context, companyID string) (accounting.RecordSet, error) {
	filter := portsrepo.ListFilter{CompanyID: companyID}
	var set accounting.RecordSet
	var err error

	if set.Payables, _, err = l.repos.PayableRepo.ListPayables(ctx, filter); err != nil {
		return set, fmt.Errorf("failed to load payables: %w", err)
	}
	if set.Receivables, _, err = l.repos.ReceivableRepo.ListReceivables(ctx, filter); err != nil {
		return set, fmt.Errorf("failed to load receivables: %w", err)
	}
	if set.ManualEntries, _, err = l.repos.ManualEntryRepo.ListManualEntries(ctx, filter); err != nil {
		return set, fmt.Errorf("failed to load manual entries: %w", err)
	}
	if set.BalanceAdjustments, err = l.repos.BalanceAdjustmentRepo.ListBalanceAdjustments(ctx, filter); err != nil {
		return set, fmt.Errorf("failed to load balance adjustments: %w", err)
	}
	if set.Categories, err = l.repos.CategoryRepo.ListCategories(ctx, companyID); err != nil {
		return set, fmt.Errorf("failed to load categories: %w", err)
	}
	return set, nil
}
