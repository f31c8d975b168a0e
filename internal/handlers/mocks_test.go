package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock PayableService ---
type MockPayableService struct {
	mock.Mock
}

func (m *MockPayableService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest, creatorUserID string) (*domain.Payable, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}
func (m *MockPayableService) GetPayableByID(ctx context.Context, payableID string) (*domain.Payable, error) {
	args := m.Called(ctx, payableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}
func (m *MockPayableService) ListPayables(ctx context.Context, params dto.ListRecordsParams) (*dto.ListPayablesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPayablesResponse), args.Error(1)
}
func (m *MockPayableService) UpdatePayable(ctx context.Context, payableID string, req dto.UpdatePayableRequest, userID string) (*domain.Payable, error) {
	args := m.Called(ctx, payableID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}
func (m *MockPayableService) PayPayable(ctx context.Context, payableID string, req dto.PayPayableRequest, userID string) (*domain.Payable, error) {
	args := m.Called(ctx, payableID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}
func (m *MockPayableService) DeactivatePayable(ctx context.Context, payableID string, userID string) error {
	args := m.Called(ctx, payableID, userID)
	return args.Error(0)
}

var _ portssvc.PayableSvcFacade = (*MockPayableService)(nil)

// --- Mock RecurrenceService ---
type MockRecurrenceService struct {
	mock.Mock
}

func (m *MockRecurrenceService) ExpandPayable(ctx context.Context, payableID string, userID string) (int, error) {
	args := m.Called(ctx, payableID, userID)
	return args.Int(0), args.Error(1)
}

var _ portssvc.RecurrenceSvc = (*MockRecurrenceService)(nil)

// --- Mock CashFlowService ---
type MockCashFlowService struct {
	mock.Mock
}

func (m *MockCashFlowService) GetCashFlow(ctx context.Context, query domain.CashFlowQuery) (*domain.CashFlowSeries, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowSeries), args.Error(1)
}
func (m *MockCashFlowService) GetSummary(ctx context.Context, query domain.CashFlowQuery) (*domain.CashFlowSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowSummary), args.Error(1)
}
func (m *MockCashFlowService) GetKPIs(ctx context.Context, query domain.CashFlowQuery) (*domain.CashFlowKPIs, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowKPIs), args.Error(1)
}
func (m *MockCashFlowService) GetMovements(ctx context.Context, query domain.CashFlowQuery) ([]domain.DailyMovement, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyMovement), args.Error(1)
}
func (m *MockCashFlowService) GetAlerts(ctx context.Context, companyID string) ([]domain.Alert, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}
func (m *MockCashFlowService) GetDRE(ctx context.Context, companyID string, year int, month time.Month) (*domain.DREReport, error) {
	args := m.Called(ctx, companyID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DREReport), args.Error(1)
}

var (
	_ portssvc.CashFlowSvc = (*MockCashFlowService)(nil)
	_ portssvc.AlertSvc    = (*MockCashFlowService)(nil)
	_ portssvc.DRESvc      = (*MockCashFlowService)(nil)
)
