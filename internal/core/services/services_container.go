package services

import (
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...Option) *portssvc.ServiceContainer {
	opts = append([]Option{WithLocation(cfg.BusinessTimezone), WithMaxRangeDays(cfg.MaxRangeDays)}, opts...)

	container := &portssvc.ServiceContainer{}

	// Recurrence first: the payable service triggers it after writes.
	container.Recurrence = NewRecurrenceService(repos.PayableRepo, opts...)
	container.Payable = NewPayableService(repos.PayableRepo, container.Recurrence, opts...)
	container.Receivable = NewReceivableService(repos.ReceivableRepo, opts...)
	container.ManualEntry = NewManualEntryService(repos.ManualEntryRepo, opts...)
	container.BalanceAdjustment = NewBalanceAdjustmentService(repos.BalanceAdjustmentRepo, opts...)
	container.Category = NewCategoryService(repos.CategoryRepo, opts...)

	reporting := NewCashFlowService(repos, cfg.IncludeInactive, opts...)
	container.CashFlow = reporting
	container.Alert = reporting
	container.DRE = reporting

	return container
}
