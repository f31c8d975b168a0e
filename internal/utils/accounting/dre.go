package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
	"github.com/shopspring/decimal"
)

var bucketOrder = map[domain.DRECategory]int{
	domain.DREGrossRevenue:        0,
	domain.DREDeductions:          1,
	domain.DRECosts:               2,
	domain.DREOperationalExpenses: 3,
}

type lineKey struct {
	bucket     domain.DRECategory
	categoryID string
}

// BuildDREStatement buckets settled payables and receivables of one month by
// their category's DRE tag. Untagged receivables count as gross revenue and
// untagged payables as operational expenses. Taxes and depreciation are not
// computed and stay at zero.
func BuildDREStatement(set RecordSet, year int, month time.Month) domain.DREStatement {
	first, last := dates.MonthBounds(year, month)
	cats := categoryIndex(set.Categories)

	totals := make(map[lineKey]decimal.Decimal)
	add := func(bucket domain.DRECategory, categoryID *string, amount decimal.Decimal) {
		key := lineKey{bucket: bucket}
		if categoryID != nil {
			key.categoryID = *categoryID
		}
		current, ok := totals[key]
		if !ok {
			current = decimal.Zero
		}
		totals[key] = current.Add(amount)
	}

	for _, r := range set.Receivables {
		if !r.IsSettled() || !dates.InRange(ReceivableCashDate(r), first, last) {
			continue
		}
		add(resolveBucket(cats, r.CategoryID, domain.DREGrossRevenue), r.CategoryID, ReceivableEffectiveAmount(r))
	}
	for _, p := range set.Payables {
		if !p.IsSettled() || !dates.InRange(PayableCashDate(p), first, last) {
			continue
		}
		add(resolveBucket(cats, p.CategoryID, domain.DREOperationalExpenses), p.CategoryID, PayableEffectiveAmount(p))
	}

	st := domain.DREStatement{
		Year:                     year,
		Month:                    int(month),
		GrossRevenue:             decimal.Zero,
		Deductions:               decimal.Zero,
		Costs:                    decimal.Zero,
		OperationalExpenses:      decimal.Zero,
		Taxes:                    decimal.Zero,
		DepreciationAmortization: decimal.Zero,
		Lines:                    make([]domain.DRELine, 0, len(totals)),
	}

	for key, amount := range totals {
		switch key.bucket {
		case domain.DREGrossRevenue:
			st.GrossRevenue = st.GrossRevenue.Add(amount)
		case domain.DREDeductions:
			st.Deductions = st.Deductions.Add(amount)
		case domain.DRECosts:
			st.Costs = st.Costs.Add(amount)
		case domain.DREOperationalExpenses:
			st.OperationalExpenses = st.OperationalExpenses.Add(amount)
		}
		name := domain.NoCategoryLabel
		if c, ok := cats[key.categoryID]; ok {
			name = c.Name
		}
		st.Lines = append(st.Lines, domain.DRELine{
			Bucket:       key.bucket,
			CategoryID:   key.categoryID,
			CategoryName: name,
			Amount:       amount,
		})
	}
	sort.Slice(st.Lines, func(i, j int) bool {
		if st.Lines[i].Bucket != st.Lines[j].Bucket {
			return bucketOrder[st.Lines[i].Bucket] < bucketOrder[st.Lines[j].Bucket]
		}
		return st.Lines[i].CategoryName < st.Lines[j].CategoryName
	})

	st.NetRevenue = st.GrossRevenue.Sub(st.Deductions)
	st.GrossProfit = st.NetRevenue.Sub(st.Costs)
	st.OperationalProfit = st.GrossProfit.Sub(st.OperationalExpenses)
	st.NetProfit = st.OperationalProfit
	return st
}

// BuildDREReport compares a month with the month before it.
func BuildDREReport(set RecordSet, year int, month time.Month) domain.DREReport {
	current := BuildDREStatement(set, year, month)
	py, pm := dates.PreviousMonth(year, month)
	previous := BuildDREStatement(set, py, pm)
	return domain.DREReport{
		Current:               current,
		Previous:              previous,
		GrossRevenueChangePct: PercentChange(current.GrossRevenue, previous.GrossRevenue),
		NetProfitChangePct:    PercentChangeAbs(current.NetProfit, previous.NetProfit),
	}
}

func resolveBucket(cats map[string]domain.Category, categoryID *string, fallback domain.DRECategory) domain.DRECategory {
	if categoryID == nil {
		return fallback
	}
	c, ok := cats[*categoryID]
	if !ok || c.DRECategory == domain.DREUntagged {
		return fallback
	}
	return domain.NormalizeDRECategory(string(c.DRECategory))
}
