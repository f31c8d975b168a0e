package services

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
)

// CashFlowSvc derives the running balance and its statistics.
// Every call reads the records fresh from the store.
type CashFlowSvc interface {
	// GetCashFlow returns one data point per day of the window.
	GetCashFlow(ctx context.Context, query domain.CashFlowQuery) (*domain.CashFlowSeries, error)

	// GetSummary returns the confirmed and pending totals of the window.
	GetSummary(ctx context.Context, query domain.CashFlowQuery) (*domain.CashFlowSummary, error)

	// GetKPIs returns the ratio indicators of the window.
	GetKPIs(ctx context.Context, query domain.CashFlowQuery) (*domain.CashFlowKPIs, error)

	// GetMovements returns the merged ledger rows of the window.
	GetMovements(ctx context.Context, query domain.CashFlowQuery) ([]domain.DailyMovement, error)
}

// AlertSvc scans current state for risk conditions
type AlertSvc interface {
	GetAlerts(ctx context.Context, companyID string) ([]domain.Alert, error)
}

// DRESvc builds the monthly income statement
type DRESvc interface {
	GetDRE(ctx context.Context, companyID string, year int, month time.Month) (*domain.DREReport, error)
}
