package accounting

import (
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// SeriesOptions controls how a running-balance series is labelled.
type SeriesOptions struct {
	// Today is the reference date for projection.
	Today string
	// MarkProjected enables the projected flag. Explicit date ranges leave it off.
	MarkProjected bool
}

// InitialBalance is the confirmed cash position before start: settled
// receivables minus settled payables (by settlement date) plus confirmed manual
// income minus confirmed manual expense, all strictly before start.
func InitialBalance(set RecordSet, start string) decimal.Decimal {
	balance := decimal.Zero
	for _, r := range set.Receivables {
		if d := ReceiptDate(r); d != "" && d < start {
			balance = balance.Add(ReceivableEffectiveAmount(r))
		}
	}
	for _, p := range set.Payables {
		if d := SettlementDate(p); d != "" && d < start {
			balance = balance.Sub(PayableEffectiveAmount(p))
		}
	}
	for _, e := range set.ManualEntries {
		if e.Status == domain.MovementConfirmed && e.Date < start {
			balance = balance.Add(signedManual(e))
		}
	}
	return balance
}

// CurrentBalance is the confirmed cash position at the end of today.
func CurrentBalance(set RecordSet, today string) (decimal.Decimal, error) {
	tomorrow, err := dates.AddDays(today, 1)
	if err != nil {
		return decimal.Zero, err
	}
	return InitialBalance(set, tomorrow), nil
}

type dayTotals struct {
	income    decimal.Decimal
	expense   decimal.Decimal
	confirmed bool
}

// RunningBalance produces one CashFlowDataPoint per day in [start, end].
//
// Settled payables and receivables land on their settlement date, unsettled ones
// on their due date so that pending amounts show up as projections. Manual
// entries count when confirmed or pending. Each day opens with the previous
// day's closing balance.
func RunningBalance(set RecordSet, start, end string, opts SeriesOptions) ([]domain.CashFlowDataPoint, error) {
	days, err := dates.Days(start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*dayTotals, len(days))
	bucket := func(d string) *dayTotals {
		t, ok := totals[d]
		if !ok {
			t = &dayTotals{income: decimal.Zero, expense: decimal.Zero}
			totals[d] = t
		}
		return t
	}

	for _, r := range set.Receivables {
		d := ReceivableCashDate(r)
		if !dates.InRange(d, start, end) {
			continue
		}
		t := bucket(d)
		t.income = t.income.Add(ReceivableEffectiveAmount(r))
		if r.IsSettled() {
			t.confirmed = true
		}
	}
	for _, p := range set.Payables {
		d := PayableCashDate(p)
		if !dates.InRange(d, start, end) {
			continue
		}
		t := bucket(d)
		t.expense = t.expense.Add(PayableEffectiveAmount(p))
		if p.IsSettled() {
			t.confirmed = true
		}
	}
	for _, e := range set.ManualEntries {
		if e.Status != domain.MovementConfirmed && e.Status != domain.MovementPending {
			continue
		}
		if !dates.InRange(e.Date, start, end) {
			continue
		}
		t := bucket(e.Date)
		if e.Type == domain.MovementExpense {
			t.expense = t.expense.Add(e.Amount)
		} else {
			t.income = t.income.Add(e.Amount)
		}
		if e.Status == domain.MovementConfirmed {
			t.confirmed = true
		}
	}

	running := InitialBalance(set, start)
	points := make([]domain.CashFlowDataPoint, 0, len(days))
	for _, d := range days {
		income, expense, confirmed := decimal.Zero, decimal.Zero, false
		if t, ok := totals[d]; ok {
			income, expense, confirmed = t.income, t.expense, t.confirmed
		}

		opening := running
		running = running.Add(income).Sub(expense)

		points = append(points, domain.CashFlowDataPoint{
			Date:           d,
			Income:         income,
			Expense:        expense,
			Balance:        running,
			InitialBalance: opening,
			FinalBalance:   running,
			Projected:      opts.MarkProjected && d > opts.Today && !confirmed,
		})
	}
	return points, nil
}

// BalanceOn returns the closing balance of date within series.
func BalanceOn(series []domain.CashFlowDataPoint, date string) (decimal.Decimal, bool) {
	for _, p := range series {
		if p.Date == date {
			return p.Balance, true
		}
	}
	return decimal.Zero, false
}
