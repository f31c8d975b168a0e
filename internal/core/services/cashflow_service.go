package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/platform/config"
	"github.com/SscSPs/cashflow_ledger/internal/utils/accounting"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// CashFlowService implements CashFlowSvc, AlertSvc and DRESvc. All three are
// thin wrappers that load a company's records and hand them to the accounting
// package.
type CashFlowService struct {
	BaseService
	loader recordLoader
	policy config.InactivePolicy
}

// NewCashFlowService creates the reporting service. The same value serves the
// cash flow, alert and DRE ports.
func NewCashFlowService(repos portsrepo.RepositoryProvider, policy config.InactivePolicy, opts ...Option) *CashFlowService {
	return &CashFlowService{
		BaseService: newBase(opts),
		loader:      recordLoader{repos: repos},
		policy:      policy,
	}
}

var (
	_ portssvc.CashFlowSvc = (*CashFlowService)(nil)
	_ portssvc.AlertSvc    = (*CashFlowService)(nil)
	_ portssvc.DRESvc      = (*CashFlowService)(nil)
)

// window is a resolved cash flow query.
type window struct {
	start, end string
	today      string
	explicit   bool
}

// resolveWindow turns a query into concrete dates. A named period covers the
// lookback days ending today; forward extends the end by the same length.
func (s *CashFlowService) resolveWindow(q domain.CashFlowQuery, forward bool) (window, error) {
	today := s.Today()
	if q.IsExplicitRange() {
		if q.StartDate == "" || q.EndDate == "" {
			return window{}, apperrors.NewValidationError("startDate and endDate must be given together")
		}
		if err := requireRange(q.StartDate, q.EndDate); err != nil {
			return window{}, err
		}
		if err := s.requireSpan(q.StartDate, q.EndDate); err != nil {
			return window{}, err
		}
		return window{start: q.StartDate, end: q.EndDate, today: today, explicit: true}, nil
	}

	period := q.Period
	if period == "" {
		period = domain.PeriodMonthly
	}
	lookback, ok := period.LookbackDays()
	if !ok {
		return window{}, apperrors.NewValidationError("unknown period %q", q.Period)
	}
	start, err := dates.AddDays(today, -lookback)
	if err != nil {
		return window{}, err
	}
	end := today
	if forward {
		if end, err = dates.AddDays(today, lookback); err != nil {
			return window{}, err
		}
	}
	return window{start: start, end: end, today: today}, nil
}

// requireSpan rejects explicit windows longer than the configured maximum.
func (s *CashFlowService) requireSpan(start, end string) error {
	limit := s.MaxRangeDays
	if limit <= 0 {
		limit = config.DefaultMaxRangeDays
	}
	span, err := dates.SpanDays(start, end)
	if err != nil {
		return apperrors.NewValidationError("invalid window %s..%s: %v", start, end, err)
	}
	if span > limit {
		return apperrors.NewValidationError("window %s..%s spans %d days, maximum is %d", start, end, span, limit)
	}
	return nil
}

func (s *CashFlowService) loadSet(ctx context.Context, companyID string, includeInactive bool) (accounting.RecordSet, error) {
	set, err := s.loader.load(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load records", slog.String("company_id", companyID))
		return accounting.RecordSet{}, err
	}
	return set.Normalize(includeInactive), nil
}

func (s *CashFlowService) series(set accounting.RecordSet, w window) ([]domain.CashFlowDataPoint, error) {
	points, err := accounting.RunningBalance(set, w.start, w.end, accounting.SeriesOptions{
		Today:         w.today,
		MarkProjected: !w.explicit,
	})
	if err != nil {
		return nil, apperrors.NewValidationError("invalid window %s..%s: %v", w.start, w.end, err)
	}
	return points, nil
}

func (s *CashFlowService) GetCashFlow(ctx context.Context, q domain.CashFlowQuery) (*domain.CashFlowSeries, error) {
	w, err := s.resolveWindow(q, true)
	if err != nil {
		return nil, err
	}
	set, err := s.loadSet(ctx, q.CompanyID, s.policy.CashFlow)
	if err != nil {
		return nil, err
	}
	points, err := s.series(set, w)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Cash flow computed",
		slog.String("start", w.start), slog.String("end", w.end), slog.Int("points", len(points)))
	return &domain.CashFlowSeries{StartDate: w.start, EndDate: w.end, Points: points}, nil
}

// summarize computes the summary and the series it was derived from.
func (s *CashFlowService) summarize(ctx context.Context, q domain.CashFlowQuery) (accounting.RecordSet, []domain.CashFlowDataPoint, domain.CashFlowSummary, window, error) {
	var summary domain.CashFlowSummary
	w, err := s.resolveWindow(q, false)
	if err != nil {
		return accounting.RecordSet{}, nil, summary, w, err
	}
	set, err := s.loadSet(ctx, q.CompanyID, s.policy.Summary)
	if err != nil {
		return set, nil, summary, w, err
	}
	points, err := s.series(set, w)
	if err != nil {
		return set, nil, summary, w, err
	}

	var current decimal.Decimal
	if w.explicit {
		if current, err = accounting.CurrentBalance(set, w.today); err != nil {
			return set, nil, summary, w, err
		}
	} else {
		current, _ = accounting.BalanceOn(points, w.today)
	}
	summary = accounting.Summarize(set, w.start, w.end, points, current)
	return set, points, summary, w, nil
}

func (s *CashFlowService) GetSummary(ctx context.Context, q domain.CashFlowQuery) (*domain.CashFlowSummary, error) {
	_, _, summary, w, err := s.summarize(ctx, q)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Summary computed", slog.String("start", w.start), slog.String("end", w.end))
	return &summary, nil
}

func (s *CashFlowService) GetKPIs(ctx context.Context, q domain.CashFlowQuery) (*domain.CashFlowKPIs, error) {
	set, points, summary, w, err := s.summarize(ctx, q)
	if err != nil {
		return nil, err
	}
	kpis, err := accounting.ComputeKPIs(set, points, summary, w.today)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute KPIs")
		return nil, err
	}
	return &kpis, nil
}

func (s *CashFlowService) GetMovements(ctx context.Context, q domain.CashFlowQuery) ([]domain.DailyMovement, error) {
	w, err := s.resolveWindow(q, true)
	if err != nil {
		return nil, err
	}
	set, err := s.loadSet(ctx, q.CompanyID, s.policy.CashFlow)
	if err != nil {
		return nil, err
	}
	return accounting.MergeMovements(set, w.start, w.end), nil
}

func (s *CashFlowService) GetAlerts(ctx context.Context, companyID string) ([]domain.Alert, error) {
	set, err := s.loadSet(ctx, companyID, false)
	if err != nil {
		return nil, err
	}
	today := s.Today()
	current, err := accounting.CurrentBalance(set, today)
	if err != nil {
		return nil, err
	}
	alerts := accounting.GenerateAlerts(set, current, today)
	if len(alerts) > 0 {
		s.LogInfo(ctx, "Alerts raised", slog.Int("count", len(alerts)))
	}
	return alerts, nil
}

func (s *CashFlowService) GetDRE(ctx context.Context, companyID string, year int, month time.Month) (*domain.DREReport, error) {
	if month < time.January || month > time.December {
		return nil, apperrors.NewValidationError("month must be between 1 and 12, got %d", month)
	}
	if year < 1900 || year > 9999 {
		return nil, apperrors.NewValidationError("year out of range: %d", year)
	}
	set, err := s.loadSet(ctx, companyID, s.policy.DRE)
	if err != nil {
		return nil, err
	}
	report := accounting.BuildDREReport(set, year, month)
	return &report, nil
}
