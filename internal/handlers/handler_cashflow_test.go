package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/SscSPs/cashflow_ledger/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCashFlowRouter(t *testing.T) (http.Handler, *MockCashFlowService, string) {
	t.Helper()
	r, v1 := newTestRouter(t)
	svc := new(MockCashFlowService)
	handlers.RegisterCashFlowRoutes(v1, svc, svc, svc)
	return r, svc, generateTestToken(t, "user-1")
}

func get(r http.Handler, token, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetSummary_QueryMapping(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		query domain.CashFlowQuery
	}{
		{"defaults to monthly", "/api/v1/cashflow/summary?companyId=c-1",
			domain.CashFlowQuery{CompanyID: "c-1", Period: domain.PeriodMonthly}},
		{"weekly", "/api/v1/cashflow/summary?companyId=c-1&period=weekly",
			domain.CashFlowQuery{CompanyID: "c-1", Period: domain.PeriodWeekly}},
		{"explicit range", "/api/v1/cashflow/summary?startDate=2024-03-01&endDate=2024-03-31",
			domain.CashFlowQuery{StartDate: "2024-03-01", EndDate: "2024-03-31"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc, token := setupCashFlowRouter(t)
			svc.On("GetSummary", mock.Anything, tt.query).
				Return(&domain.CashFlowSummary{FinalBalance: decimal.NewFromInt(42)}, nil).Once()

			w := get(r, token, tt.path)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"finalBalance":"42"`)
			svc.AssertExpectations(t)
		})
	}
}

func TestCashFlow_InvalidParams(t *testing.T) {
	r, svc, token := setupCashFlowRouter(t)

	for _, path := range []string{
		"/api/v1/cashflow?period=yearly",
		"/api/v1/cashflow/kpis?startDate=03/01/2024",
		"/api/v1/dre?year=2024&month=13",
		"/api/v1/dre?month=3",
	} {
		w := get(r, token, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	svc.AssertNotCalled(t, "GetCashFlow", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "GetDRE", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCashFlow_ValidationErrorIsBadRequest(t *testing.T) {
	r, svc, token := setupCashFlowRouter(t)
	query := domain.CashFlowQuery{StartDate: "1900-01-01", EndDate: "9999-12-31"}
	svc.On("GetCashFlow", mock.Anything, query).
		Return(nil, apperrors.NewValidationError("window too long")).Once()

	w := get(r, token, "/api/v1/cashflow?startDate=1900-01-01&endDate=9999-12-31")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "window too long")
	svc.AssertExpectations(t)
}

func TestGetCashFlow_Series(t *testing.T) {
	r, svc, token := setupCashFlowRouter(t)
	series := &domain.CashFlowSeries{
		StartDate: "2024-03-14",
		EndDate:   "2024-03-16",
		Points: []domain.CashFlowDataPoint{
			{Date: "2024-03-14"}, {Date: "2024-03-15"}, {Date: "2024-03-16", Projected: true},
		},
	}
	svc.On("GetCashFlow", mock.Anything, domain.CashFlowQuery{Period: domain.PeriodDaily}).Return(series, nil).Once()

	w := get(r, token, "/api/v1/cashflow?period=daily")

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.CashFlowSeries
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Points, 3)
	assert.True(t, got.Points[2].Projected)
}

func TestGetMovements_ServiceFailure(t *testing.T) {
	r, svc, token := setupCashFlowRouter(t)
	svc.On("GetMovements", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	w := get(r, token, "/api/v1/cashflow/movements")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestGetAlerts(t *testing.T) {
	r, svc, token := setupCashFlowRouter(t)
	alerts := []domain.Alert{
		{AlertID: "overdue-p-1", Type: domain.AlertOverdueAccount, Severity: domain.SeverityHigh, Message: "Rent is overdue"},
	}
	svc.On("GetAlerts", mock.Anything, "c-1").Return(alerts, nil).Once()

	w := get(r, token, "/api/v1/alerts?companyId=c-1")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AlertsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, domain.AlertOverdueAccount, resp.Alerts[0].Type)
}

func TestGetDRE(t *testing.T) {
	r, svc, token := setupCashFlowRouter(t)
	report := &domain.DREReport{Current: domain.DREStatement{Year: 2024, Month: 3, NetProfit: decimal.NewFromInt(700)}}
	svc.On("GetDRE", mock.Anything, "c-1", 2024, time.March).Return(report, nil).Once()

	w := get(r, token, "/api/v1/dre?companyId=c-1&year=2024&month=3")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"netProfit":"700"`)
	svc.AssertExpectations(t)
}
