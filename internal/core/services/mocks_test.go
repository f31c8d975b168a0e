package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockPayableRepository is a mock type for the PayableRepositoryFacade interface
type MockPayableRepository struct {
	mock.Mock
}

func (m *MockPayableRepository) FindPayableByID(ctx context.Context, payableID string) (*domain.Payable, error) {
	args := m.Called(ctx, payableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}

func (m *MockPayableRepository) ListPayables(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Payable, *string, error) {
	args := m.Called(ctx, filter)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Payable), token, args.Error(2)
}

func (m *MockPayableRepository) SavePayable(ctx context.Context, payable domain.Payable) error {
	return m.Called(ctx, payable).Error(0)
}

func (m *MockPayableRepository) UpdatePayable(ctx context.Context, payable domain.Payable) error {
	return m.Called(ctx, payable).Error(0)
}

func (m *MockPayableRepository) MarkPayablePaid(ctx context.Context, payable domain.Payable) error {
	return m.Called(ctx, payable).Error(0)
}

func (m *MockPayableRepository) DeactivatePayable(ctx context.Context, payableID string, userID string, at time.Time) error {
	return m.Called(ctx, payableID, userID, at).Error(0)
}

func (m *MockPayableRepository) SaveRecurrenceInstances(ctx context.Context, originID string, instances []domain.Payable) (int, error) {
	args := m.Called(ctx, originID, instances)
	return args.Int(0), args.Error(1)
}

// MockReceivableRepository is a mock type for the ReceivableRepositoryFacade interface
type MockReceivableRepository struct {
	mock.Mock
}

func (m *MockReceivableRepository) FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	args := m.Called(ctx, receivableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) ListReceivables(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Receivable, *string, error) {
	args := m.Called(ctx, filter)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Receivable), token, args.Error(2)
}

func (m *MockReceivableRepository) SaveReceivable(ctx context.Context, receivable domain.Receivable) error {
	return m.Called(ctx, receivable).Error(0)
}

func (m *MockReceivableRepository) UpdateReceivable(ctx context.Context, receivable domain.Receivable) error {
	return m.Called(ctx, receivable).Error(0)
}

func (m *MockReceivableRepository) MarkReceivableReceived(ctx context.Context, receivable domain.Receivable) error {
	return m.Called(ctx, receivable).Error(0)
}

func (m *MockReceivableRepository) DeactivateReceivable(ctx context.Context, receivableID string, userID string, at time.Time) error {
	return m.Called(ctx, receivableID, userID, at).Error(0)
}

// MockManualEntryRepository is a mock type for the ManualEntryRepository interface
type MockManualEntryRepository struct {
	mock.Mock
}

func (m *MockManualEntryRepository) SaveManualEntry(ctx context.Context, entry domain.ManualEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockManualEntryRepository) ListManualEntries(ctx context.Context, filter portsrepo.ListFilter) ([]domain.ManualEntry, *string, error) {
	args := m.Called(ctx, filter)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.ManualEntry), token, args.Error(2)
}

// MockBalanceAdjustmentRepository is a mock type for the BalanceAdjustmentRepository interface
type MockBalanceAdjustmentRepository struct {
	mock.Mock
}

func (m *MockBalanceAdjustmentRepository) SaveBalanceAdjustment(ctx context.Context, adjustment domain.BalanceAdjustment) error {
	return m.Called(ctx, adjustment).Error(0)
}

func (m *MockBalanceAdjustmentRepository) ListBalanceAdjustments(ctx context.Context, filter portsrepo.ListFilter) ([]domain.BalanceAdjustment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceAdjustment), args.Error(1)
}

// MockCategoryRepository is a mock type for the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// MockRecurrenceService is a mock type for the RecurrenceSvc interface
type MockRecurrenceService struct {
	mock.Mock
}

func (m *MockRecurrenceService) ExpandPayable(ctx context.Context, payableID string, userID string) (int, error) {
	args := m.Called(ctx, payableID, userID)
	return args.Int(0), args.Error(1)
}
