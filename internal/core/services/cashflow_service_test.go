package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_ledger/internal/core/services"
	"github.com/SscSPs/cashflow_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CashFlowServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	payables    *MockPayableRepository
	receivables *MockReceivableRepository
	entries     *MockManualEntryRepository
	adjustments *MockBalanceAdjustmentRepository
	categories  *MockCategoryRepository
	service     *services.CashFlowService
}

// Fixture, with today = 2024-03-15:
//
//	r-paid   received 2024-03-05   1000
//	p-paid   paid     2024-03-10    300
//	p-open   due      2024-03-14    200 (overdue)
//	r-today  due      2024-03-15    100
//	r-open   due      2024-03-20    500
//	p-off    due      2024-03-12    999 (inactive)
func (suite *CashFlowServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.payables = new(MockPayableRepository)
	suite.receivables = new(MockReceivableRepository)
	suite.entries = new(MockManualEntryRepository)
	suite.adjustments = new(MockBalanceAdjustmentRepository)
	suite.categories = new(MockCategoryRepository)

	all := portsrepo.ListFilter{CompanyID: "company-1"}

	paidPayable := *openPayable("p-paid")
	paidPayable.Amount = dec("300")
	paidPayable.Status = domain.PayablePaid
	paidPayable.PaymentDate = strPtr("2024-03-10")
	openP := *openPayable("p-open")
	openP.Amount = dec("200")
	openP.DueDate = "2024-03-14"
	inactive := *openPayable("p-off")
	inactive.Amount = dec("999")
	inactive.DueDate = "2024-03-12"
	inactive.IsActive = false

	paidReceivable := *openReceivable("r-paid")
	paidReceivable.Amount = dec("1000")
	paidReceivable.DueDate = "2024-03-05"
	paidReceivable.Status = domain.ReceivableReceived
	paidReceivable.ReceivedDate = strPtr("2024-03-05")
	dueToday := *openReceivable("r-today")
	dueToday.Amount = dec("100")
	dueToday.DueDate = "2024-03-15"
	future := *openReceivable("r-open")

	suite.payables.On("ListPayables", mock.Anything, all).Return([]domain.Payable{paidPayable, openP, inactive}, nil, nil).Maybe()
	suite.receivables.On("ListReceivables", mock.Anything, all).Return([]domain.Receivable{paidReceivable, dueToday, future}, nil, nil).Maybe()
	suite.entries.On("ListManualEntries", mock.Anything, all).Return([]domain.ManualEntry{}, nil, nil).Maybe()
	suite.adjustments.On("ListBalanceAdjustments", mock.Anything, all).Return([]domain.BalanceAdjustment{}, nil).Maybe()
	suite.categories.On("ListCategories", mock.Anything, "company-1").Return([]domain.Category{}, nil).Maybe()

	suite.service = services.NewCashFlowService(portsrepo.RepositoryProvider{
		PayableRepo:           suite.payables,
		ReceivableRepo:        suite.receivables,
		ManualEntryRepo:       suite.entries,
		BalanceAdjustmentRepo: suite.adjustments,
		CategoryRepo:          suite.categories,
	}, config.InactivePolicy{DRE: true}, testOptions()...)
}

func (suite *CashFlowServiceTestSuite) explicitMarch() domain.CashFlowQuery {
	return domain.CashFlowQuery{CompanyID: "company-1", StartDate: "2024-03-01", EndDate: "2024-03-31"}
}

func (suite *CashFlowServiceTestSuite) TestGetCashFlow_ExplicitRange() {
	series, err := suite.service.GetCashFlow(suite.ctx, suite.explicitMarch())

	suite.Require().NoError(err)
	suite.Require().Len(series.Points, 31)
	t := suite.T()
	assertDecimal(t, "0", series.Points[0].InitialBalance)
	assertDecimal(t, "600", series.Points[14].Balance, "2024-03-15")
	assertDecimal(t, "1100", series.Points[30].FinalBalance)
	for _, p := range series.Points {
		suite.False(p.Projected, p.Date)
	}
}

func (suite *CashFlowServiceTestSuite) TestGetCashFlow_PeriodMarksProjection() {
	series, err := suite.service.GetCashFlow(suite.ctx, domain.CashFlowQuery{CompanyID: "company-1", Period: domain.PeriodWeekly})

	suite.Require().NoError(err)
	suite.Equal("2024-02-16", series.StartDate)
	suite.Equal("2024-04-12", series.EndDate)
	suite.Len(series.Points, 57)

	byDate := make(map[string]domain.CashFlowDataPoint, len(series.Points))
	for _, p := range series.Points {
		byDate[p.Date] = p
	}
	suite.True(byDate["2024-03-20"].Projected)
	suite.False(byDate["2024-03-14"].Projected)
	suite.False(byDate["2024-03-15"].Projected)
}

func (suite *CashFlowServiceTestSuite) TestGetCashFlow_DailyIsToday() {
	series, err := suite.service.GetCashFlow(suite.ctx, domain.CashFlowQuery{CompanyID: "company-1", Period: domain.PeriodDaily})

	suite.Require().NoError(err)
	suite.Require().Len(series.Points, 1)
	suite.Equal("2024-03-15", series.Points[0].Date)
}

func (suite *CashFlowServiceTestSuite) TestGetCashFlow_InvalidQueries() {
	tests := []struct {
		name  string
		query domain.CashFlowQuery
	}{
		{"start only", domain.CashFlowQuery{CompanyID: "company-1", StartDate: "2024-03-01"}},
		{"inverted", domain.CashFlowQuery{CompanyID: "company-1", StartDate: "2024-03-31", EndDate: "2024-03-01"}},
		{"bad date", domain.CashFlowQuery{CompanyID: "company-1", StartDate: "2024-03-01", EndDate: "2024-03-32"}},
		{"unknown period", domain.CashFlowQuery{CompanyID: "company-1", Period: "hourly"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.GetCashFlow(suite.ctx, tt.query)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (suite *CashFlowServiceTestSuite) TestExplicitRange_TooLong() {
	huge := domain.CashFlowQuery{CompanyID: "company-1", StartDate: "1900-01-01", EndDate: "9999-12-31"}
	overDefault := domain.CashFlowQuery{CompanyID: "company-1", StartDate: "2024-01-01", EndDate: "2026-01-01"}

	for _, q := range []domain.CashFlowQuery{huge, overDefault} {
		_, err := suite.service.GetCashFlow(suite.ctx, q)
		suite.ErrorIs(err, apperrors.ErrValidation, "cashflow %s..%s", q.StartDate, q.EndDate)
		_, err = suite.service.GetSummary(suite.ctx, q)
		suite.ErrorIs(err, apperrors.ErrValidation, "summary %s..%s", q.StartDate, q.EndDate)
		_, err = suite.service.GetKPIs(suite.ctx, q)
		suite.ErrorIs(err, apperrors.ErrValidation, "kpis %s..%s", q.StartDate, q.EndDate)
		_, err = suite.service.GetMovements(suite.ctx, q)
		suite.ErrorIs(err, apperrors.ErrValidation, "movements %s..%s", q.StartDate, q.EndDate)
	}
	suite.payables.AssertNotCalled(suite.T(), "ListPayables", mock.Anything, mock.Anything)
}

func (suite *CashFlowServiceTestSuite) TestExplicitRange_AtLimit() {
	series, err := suite.service.GetCashFlow(suite.ctx, domain.CashFlowQuery{
		CompanyID: "company-1", StartDate: "2024-01-01", EndDate: "2025-12-31",
	})

	suite.Require().NoError(err)
	suite.Len(series.Points, config.DefaultMaxRangeDays)
}

func (suite *CashFlowServiceTestSuite) TestExplicitRange_ConfiguredLimit() {
	opts := append(testOptions(), services.WithMaxRangeDays(31))
	svc := services.NewCashFlowService(portsrepo.RepositoryProvider{
		PayableRepo:           suite.payables,
		ReceivableRepo:        suite.receivables,
		ManualEntryRepo:       suite.entries,
		BalanceAdjustmentRepo: suite.adjustments,
		CategoryRepo:          suite.categories,
	}, config.InactivePolicy{}, opts...)

	_, err := svc.GetCashFlow(suite.ctx, suite.explicitMarch())
	suite.NoError(err)

	_, err = svc.GetCashFlow(suite.ctx, domain.CashFlowQuery{CompanyID: "company-1", StartDate: "2024-03-01", EndDate: "2024-04-01"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashFlowServiceTestSuite) TestGetSummary_ExplicitRange() {
	summary, err := suite.service.GetSummary(suite.ctx, suite.explicitMarch())

	suite.Require().NoError(err)
	t := suite.T()
	assertDecimal(t, "1000", summary.TotalIncomeConfirmed)
	assertDecimal(t, "300", summary.TotalExpenseConfirmed)
	assertDecimal(t, "600", summary.TotalIncomePending)
	assertDecimal(t, "200", summary.TotalExpensePending)
	assertDecimal(t, "1100", summary.ProjectedBalance)
	assertDecimal(t, "700", summary.FinalBalance)
	assertDecimal(t, "1100", summary.NetFlow)
	assertDecimal(t, "700", summary.CurrentBalance)
}

func (suite *CashFlowServiceTestSuite) TestGetSummary_PeriodUsesSeriesBalanceToday() {
	summary, err := suite.service.GetSummary(suite.ctx, domain.CashFlowQuery{CompanyID: "company-1", Period: domain.PeriodWeekly})

	suite.Require().NoError(err)
	suite.Equal("2024-02-16", summary.StartDate)
	suite.Equal("2024-03-15", summary.EndDate)
	t := suite.T()
	assertDecimal(t, "100", summary.TotalIncomePending)
	assertDecimal(t, "200", summary.TotalExpensePending)
	assertDecimal(t, "600", summary.CurrentBalance)
}

func (suite *CashFlowServiceTestSuite) TestGetKPIs() {
	kpis, err := suite.service.GetKPIs(suite.ctx, domain.CashFlowQuery{CompanyID: "company-1", Period: domain.PeriodWeekly})

	suite.Require().NoError(err)
	t := suite.T()
	assertDecimal(t, "0.3333", kpis.DelinquencyRate)
	assertDecimal(t, "1", kpis.ImmediateLiquidity)
	assertDecimal(t, "0.7", kpis.IncomeVsExpense)
}

func (suite *CashFlowServiceTestSuite) TestGetMovements() {
	movements, err := suite.service.GetMovements(suite.ctx, suite.explicitMarch())

	suite.Require().NoError(err)
	suite.Require().Len(movements, 5)
	suite.Equal("receivable-r-paid", movements[0].MovementID)
	for i := 1; i < len(movements); i++ {
		suite.LessOrEqual(movements[i-1].Date, movements[i].Date)
	}
}

func (suite *CashFlowServiceTestSuite) TestGetAlerts() {
	alerts, err := suite.service.GetAlerts(suite.ctx, "company-1")

	suite.Require().NoError(err)
	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.AlertID)
	}
	suite.ElementsMatch([]string{"payable-overdue-p-open", "receivable-due-today-r-today"}, ids)
}

// The period summary projects unpaid obligations onto their due dates, while the
// negative-balance alert only looks at cash that actually moved.
func (suite *CashFlowServiceTestSuite) TestCurrentBalance_SummaryVsAlerts() {
	all := portsrepo.ListFilter{CompanyID: "company-2"}
	received := *openReceivable("r-in")
	received.CompanyID = "company-2"
	received.Amount = dec("100")
	received.DueDate = "2024-03-05"
	received.Status = domain.ReceivableReceived
	received.ReceivedDate = strPtr("2024-03-05")
	late := *openPayable("p-late")
	late.CompanyID = "company-2"
	late.Amount = dec("300")

	payables := new(MockPayableRepository)
	receivables := new(MockReceivableRepository)
	entries := new(MockManualEntryRepository)
	adjustments := new(MockBalanceAdjustmentRepository)
	categories := new(MockCategoryRepository)
	payables.On("ListPayables", mock.Anything, all).Return([]domain.Payable{late}, nil, nil)
	receivables.On("ListReceivables", mock.Anything, all).Return([]domain.Receivable{received}, nil, nil)
	entries.On("ListManualEntries", mock.Anything, all).Return([]domain.ManualEntry{}, nil, nil)
	adjustments.On("ListBalanceAdjustments", mock.Anything, all).Return([]domain.BalanceAdjustment{}, nil)
	categories.On("ListCategories", mock.Anything, "company-2").Return([]domain.Category{}, nil)
	svc := services.NewCashFlowService(portsrepo.RepositoryProvider{
		PayableRepo:           payables,
		ReceivableRepo:        receivables,
		ManualEntryRepo:       entries,
		BalanceAdjustmentRepo: adjustments,
		CategoryRepo:          categories,
	}, config.InactivePolicy{}, testOptions()...)

	summary, err := svc.GetSummary(suite.ctx, domain.CashFlowQuery{CompanyID: "company-2", Period: domain.PeriodWeekly})
	suite.Require().NoError(err)
	assertDecimal(suite.T(), "-200", summary.CurrentBalance, "unpaid payable due 2024-03-10 is projected")

	explicit, err := svc.GetSummary(suite.ctx, domain.CashFlowQuery{CompanyID: "company-2", StartDate: "2024-03-01", EndDate: "2024-03-31"})
	suite.Require().NoError(err)
	assertDecimal(suite.T(), "100", explicit.CurrentBalance, "explicit range reports confirmed cash")

	alerts, err := svc.GetAlerts(suite.ctx, "company-2")
	suite.Require().NoError(err)
	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.AlertID)
	}
	suite.Equal([]string{"payable-overdue-p-late"}, ids, "confirmed cash is 100, so no negative-balance alert")
}

func (suite *CashFlowServiceTestSuite) TestGetDRE() {
	report, err := suite.service.GetDRE(suite.ctx, "company-1", 2024, time.March)

	suite.Require().NoError(err)
	t := suite.T()
	assertDecimal(t, "1000", report.Current.GrossRevenue)
	assertDecimal(t, "300", report.Current.OperationalExpenses)
	assertDecimal(t, "700", report.Current.NetProfit)
	assertDecimal(t, "0", report.GrossRevenueChangePct)

	_, err = suite.service.GetDRE(suite.ctx, "company-1", 2024, time.Month(13))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashFlowServiceTestSuite) TestLoadError() {
	failing := new(MockPayableRepository)
	failing.On("ListPayables", mock.Anything, mock.Anything).Return(nil, nil, assert.AnError)
	svc := services.NewCashFlowService(portsrepo.RepositoryProvider{PayableRepo: failing}, config.InactivePolicy{}, testOptions()...)

	_, err := svc.GetAlerts(suite.ctx, "company-1")

	suite.ErrorIs(err, assert.AnError)
}

func TestCashFlowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashFlowServiceTestSuite))
}
