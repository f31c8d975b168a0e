package accounting

import (
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// liquidityWindowDays is how far ahead immediate liquidity looks, today included.
const liquidityWindowDays = 7

var hundred = decimal.NewFromInt(100)

// Summarize totals a period. Confirmed figures use settlement dates, pending
// figures use due dates. NetFlow comes from the running-balance series of the
// same window and currentBalance is supplied by the caller.
func Summarize(set RecordSet, start, end string, series []domain.CashFlowDataPoint, currentBalance decimal.Decimal) domain.CashFlowSummary {
	s := domain.CashFlowSummary{
		StartDate:             start,
		EndDate:               end,
		TotalIncomeConfirmed:  decimal.Zero,
		TotalExpenseConfirmed: decimal.Zero,
		TotalIncomePending:    decimal.Zero,
		TotalExpensePending:   decimal.Zero,
		InitialBalance:        decimal.Zero,
		NetFlow:               decimal.Zero,
		CurrentBalance:        currentBalance,
	}

	for _, r := range set.Receivables {
		amount := ReceivableEffectiveAmount(r)
		if r.IsSettled() {
			if dates.InRange(ReceivableCashDate(r), start, end) {
				s.TotalIncomeConfirmed = s.TotalIncomeConfirmed.Add(amount)
			}
		} else if dates.InRange(r.DueDate, start, end) {
			s.TotalIncomePending = s.TotalIncomePending.Add(amount)
		}
	}
	for _, p := range set.Payables {
		amount := PayableEffectiveAmount(p)
		if p.IsSettled() {
			if dates.InRange(PayableCashDate(p), start, end) {
				s.TotalExpenseConfirmed = s.TotalExpenseConfirmed.Add(amount)
			}
		} else if dates.InRange(p.DueDate, start, end) {
			s.TotalExpensePending = s.TotalExpensePending.Add(amount)
		}
	}
	for _, e := range set.ManualEntries {
		if e.Status != domain.MovementConfirmed || !dates.InRange(e.Date, start, end) {
			continue
		}
		if e.Type == domain.MovementExpense {
			s.TotalExpenseConfirmed = s.TotalExpenseConfirmed.Add(e.Amount)
		} else {
			s.TotalIncomeConfirmed = s.TotalIncomeConfirmed.Add(e.Amount)
		}
	}
	for _, a := range set.BalanceAdjustments {
		if a.Type == domain.AdjustmentInitial && dates.InRange(a.Date, start, end) {
			s.InitialBalance = s.InitialBalance.Add(a.Amount)
		}
	}
	for _, p := range series {
		s.NetFlow = s.NetFlow.Add(p.Income).Sub(p.Expense)
	}

	s.TotalIncome = s.TotalIncomeConfirmed.Add(s.InitialBalance)
	s.TotalExpense = s.TotalExpenseConfirmed
	s.ProjectedBalance = s.TotalIncomeConfirmed.Add(s.TotalIncomePending).
		Sub(s.TotalExpenseConfirmed.Add(s.TotalExpensePending))
	s.FinalBalance = s.TotalIncomeConfirmed.Sub(s.TotalExpenseConfirmed)
	return s
}

// ComputeKPIs derives the ratio indicators. Every ratio has a fixed value for an
// empty denominator: incomeVsExpense and delinquencyRate fall back to 0,
// immediateLiquidity to 1, burnRate and averageBalance to 0.
func ComputeKPIs(set RecordSet, series []domain.CashFlowDataPoint, summary domain.CashFlowSummary, today string) (domain.CashFlowKPIs, error) {
	kpis := domain.CashFlowKPIs{
		AverageBalance:     decimal.Zero,
		IncomeVsExpense:    decimal.Zero,
		DelinquencyRate:    decimal.Zero,
		ImmediateLiquidity: decimal.NewFromInt(1),
		BurnRate:           decimal.Zero,
	}

	if len(series) > 0 {
		sum := decimal.Zero
		for _, p := range series {
			sum = sum.Add(p.Balance)
		}
		kpis.AverageBalance = sum.Div(decimal.NewFromInt(int64(len(series)))).Round(2)
	}

	if summary.TotalIncome.IsPositive() {
		kpis.IncomeVsExpense = summary.TotalIncome.Sub(summary.TotalExpense).Div(summary.TotalIncome).Round(4)
	}

	open, overdue := 0, 0
	for _, p := range set.Payables {
		if !p.IsActive || p.IsSettled() {
			continue
		}
		open++
		if p.DueDate < today {
			overdue++
		}
	}
	for _, r := range set.Receivables {
		if !r.IsActive || r.IsSettled() {
			continue
		}
		open++
		if r.DueDate < today {
			overdue++
		}
	}
	if open > 0 {
		kpis.DelinquencyRate = decimal.NewFromInt(int64(overdue)).Div(decimal.NewFromInt(int64(open))).Round(4)
	}

	windowEnd, err := dates.AddDays(today, liquidityWindowDays-1)
	if err != nil {
		return kpis, err
	}
	nearTerm := decimal.Zero
	for _, p := range set.Payables {
		if p.IsActive && !p.IsSettled() && dates.InRange(p.DueDate, today, windowEnd) {
			nearTerm = nearTerm.Add(PayableEffectiveAmount(p))
		}
	}
	if nearTerm.IsPositive() {
		kpis.ImmediateLiquidity = summary.CurrentBalance.Div(nearTerm).Round(4)
	}

	burnTotal, burnDays := decimal.Zero, 0
	for _, p := range series {
		if p.Projected || !p.Expense.IsPositive() {
			continue
		}
		burnTotal = burnTotal.Add(p.Expense)
		burnDays++
	}
	if burnDays > 0 {
		kpis.BurnRate = burnTotal.Div(decimal.NewFromInt(int64(burnDays))).Round(2)
	}

	return kpis, nil
}

// PercentChange is (current - previous) / previous * 100, or 0 when previous is 0.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

// PercentChangeAbs divides by |previous| so a recovery from a loss reads as growth.
func PercentChangeAbs(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred).Round(2)
}
