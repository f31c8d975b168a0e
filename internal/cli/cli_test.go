package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReports struct {
	mock.Mock
}

func (m *mockReports) GetCashFlow(ctx context.Context, q domain.CashFlowQuery) (*domain.CashFlowSeries, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowSeries), args.Error(1)
}
func (m *mockReports) GetSummary(ctx context.Context, q domain.CashFlowQuery) (*domain.CashFlowSummary, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowSummary), args.Error(1)
}
func (m *mockReports) GetKPIs(ctx context.Context, q domain.CashFlowQuery) (*domain.CashFlowKPIs, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowKPIs), args.Error(1)
}
func (m *mockReports) GetMovements(ctx context.Context, q domain.CashFlowQuery) ([]domain.DailyMovement, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyMovement), args.Error(1)
}
func (m *mockReports) GetAlerts(ctx context.Context, companyID string) ([]domain.Alert, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]domain.Alert), args.Error(1)
}
func (m *mockReports) GetDRE(ctx context.Context, companyID string, year int, month time.Month) (*domain.DREReport, error) {
	args := m.Called(ctx, companyID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DREReport), args.Error(1)
}
func (m *mockReports) ExpandPayable(ctx context.Context, payableID string, userID string) (int, error) {
	args := m.Called(ctx, payableID, userID)
	return args.Int(0), args.Error(1)
}

func run(t *testing.T, m *mockReports, args ...string) (string, error) {
	t.Helper()
	cleaned := false
	factory := func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
		return &portssvc.ServiceContainer{CashFlow: m, Alert: m, DRE: m, Recurrence: m}, func() { cleaned = true }, nil
	}
	root := NewRootCommand(factory)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		assert.True(t, cleaned, "cleanup not called")
	}
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		query    domain.CashFlowQuery
		contains string
	}{
		{"json default monthly", []string{"summary", "--company", "acme"},
			domain.CashFlowQuery{CompanyID: "acme", Period: domain.PeriodMonthly}, `"finalBalance": "42"`},
		{"yaml explicit range", []string{"summary", "--start", "2024-03-01", "--end", "2024-03-31", "-o", "yaml"},
			domain.CashFlowQuery{StartDate: "2024-03-01", EndDate: "2024-03-31"}, `finalBalance: "42"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mockReports)
			m.On("GetSummary", mock.Anything, tt.query).
				Return(&domain.CashFlowSummary{FinalBalance: decimal.NewFromInt(42)}, nil).Once()

			out, err := run(t, m, tt.args...)

			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
			m.AssertExpectations(t)
		})
	}
}

func TestCommandValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad output", []string{"alerts", "-o", "xml"}},
		{"bad period", []string{"kpis", "--period", "yearly"}},
		{"bad date", []string{"cashflow", "--start", "2024-13-01"}},
		{"bad month", []string{"dre", "--year", "2024", "--month", "0"}},
		{"expand needs id", []string{"expand-recurrence"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mockReports)
			_, err := run(t, m, tt.args...)
			assert.Error(t, err)
			m.AssertNotCalled(t, "GetAlerts", mock.Anything, mock.Anything)
		})
	}
}

func TestAlertsCommand(t *testing.T) {
	m := new(mockReports)
	m.On("GetAlerts", mock.Anything, "acme").Return([]domain.Alert{
		{AlertID: "negative-balance", Type: domain.AlertNegativeBalance, Severity: domain.SeverityHigh},
	}, nil).Once()

	out, err := run(t, m, "alerts", "--company", "acme")

	require.NoError(t, err)
	assert.Contains(t, out, `"count": 1`)
	assert.Contains(t, out, `"negative_balance"`)
}

func TestDRECommand(t *testing.T) {
	m := new(mockReports)
	m.On("GetDRE", mock.Anything, "", 2024, time.February).
		Return(&domain.DREReport{Current: domain.DREStatement{Year: 2024, Month: 2}}, nil).Once()

	out, err := run(t, m, "dre", "--year", "2024", "--month", "2")

	require.NoError(t, err)
	assert.Contains(t, out, `"month": 2`)
	m.AssertExpectations(t)
}

func TestExpandRecurrenceCommand(t *testing.T) {
	m := new(mockReports)
	m.On("ExpandPayable", mock.Anything, "p-1", "ops").Return(11, nil).Once()
	m.On("ExpandPayable", mock.Anything, "p-2", "ops").Return(0, errors.New("boom")).Once()

	_, err := run(t, m, "expand-recurrence", "p-1", "p-2", "--user", "ops")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payable p-2")
	m.AssertExpectations(t)
}

func TestMovementsCommand(t *testing.T) {
	m := new(mockReports)
	m.On("GetMovements", mock.Anything, domain.CashFlowQuery{Period: domain.PeriodDaily}).
		Return([]domain.DailyMovement{{MovementID: "receivable-r-1", Date: "2024-03-15"}}, nil).Once()

	out, err := run(t, m, "movements", "--period", "daily")

	require.NoError(t, err)
	assert.Contains(t, out, "receivable-r-1")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")
	t.Setenv("JWT_ISSUER", "cashflow-ledger")

	root := NewRootCommand(nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"token", "--user", "dev-1", "--ttl", "5m"})
	require.NoError(t, root.Execute())

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(out.String()), claims, func(*jwt.Token) (interface{}, error) {
		return []byte("cli-test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "dev-1", claims.Subject)
	assert.Equal(t, "cashflow-ledger", claims.Issuer)
}
