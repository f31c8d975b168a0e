package accounting

import (
	"sort"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
)

// sourceRank is the intra-day order of merged rows.
var sourceRank = map[domain.MovementSource]int{
	domain.SourceBalanceAdjustment: 0,
	domain.SourceReceivable:        1,
	domain.SourcePayable:           2,
	domain.SourceManualEntry:       3,
}

// MergeMovements projects every record dated within [from, to] into the common
// DailyMovement shape. Payables and receivables are keyed by due date, manual
// entries by entry date and balance adjustments by adjustment date. Rows are
// ordered by date, then adjustments, receivables, payables, manual entries.
func MergeMovements(set RecordSet, from, to string) []domain.DailyMovement {
	cats := categoryIndex(set.Categories)
	var rows []domain.DailyMovement

	for _, a := range set.BalanceAdjustments {
		if dates.InRange(a.Date, from, to) {
			rows = append(rows, ProjectBalanceAdjustment(a))
		}
	}
	for _, r := range set.Receivables {
		if dates.InRange(r.DueDate, from, to) {
			rows = append(rows, ProjectReceivable(r, categoryLabel(cats, r.CategoryID)))
		}
	}
	for _, p := range set.Payables {
		if dates.InRange(p.DueDate, from, to) {
			rows = append(rows, ProjectPayable(p, categoryLabel(cats, p.CategoryID)))
		}
	}
	for _, e := range set.ManualEntries {
		if dates.InRange(e.Date, from, to) {
			rows = append(rows, ProjectManualEntry(e))
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return sourceRank[rows[i].Source] < sourceRank[rows[j].Source]
	})
	return rows
}

// ProjectPayable maps a payable onto an expense row.
func ProjectPayable(p domain.Payable, category string) domain.DailyMovement {
	status := domain.MovementPending
	if p.IsSettled() {
		status = domain.MovementConfirmed
	}
	due := p.DueDate
	return domain.DailyMovement{
		MovementID:    "payable-" + p.PayableID,
		Source:        domain.SourcePayable,
		SourceID:      p.PayableID,
		CompanyID:     p.CompanyID,
		Date:          p.DueDate,
		Type:          domain.MovementExpense,
		Kind:          domain.KindNormal,
		Description:   p.Description,
		Category:      category,
		Amount:        PayableEffectiveAmount(p),
		PaymentMethod: deref(p.PaymentMethod),
		Status:        status,
		CostCenter:    p.CostCenterID,
		Recurrence:    recurrenceLabel(p.Recurrence),
		DueDate:       &due,
		ActualDate:    p.PaymentDate,
	}
}

// ProjectReceivable maps a receivable onto an income row.
func ProjectReceivable(r domain.Receivable, category string) domain.DailyMovement {
	status := domain.MovementPending
	if r.IsSettled() {
		status = domain.MovementConfirmed
	}
	due := r.DueDate
	return domain.DailyMovement{
		MovementID:    "receivable-" + r.ReceivableID,
		Source:        domain.SourceReceivable,
		SourceID:      r.ReceivableID,
		CompanyID:     r.CompanyID,
		Date:          r.DueDate,
		Type:          domain.MovementIncome,
		Kind:          domain.KindNormal,
		Description:   r.Description,
		Category:      category,
		Amount:        ReceivableEffectiveAmount(r),
		PaymentMethod: deref(r.PaymentMethod),
		Status:        status,
		Recurrence:    recurrenceLabel(r.Recurrence),
		DueDate:       &due,
		ActualDate:    r.ReceivedDate,
	}
}

// ProjectManualEntry copies a manual entry; it keeps its own status.
func ProjectManualEntry(e domain.ManualEntry) domain.DailyMovement {
	return domain.DailyMovement{
		MovementID:     "manual-" + e.EntryID,
		Source:         domain.SourceManualEntry,
		SourceID:       e.EntryID,
		CompanyID:      e.CompanyID,
		Date:           e.Date,
		CompetenceDate: e.CompetenceDate,
		Type:           e.Type,
		Kind:           e.Kind,
		Description:    e.Description,
		Category:       e.Category,
		Subcategory:    e.Subcategory,
		Amount:         e.Amount,
		GrossAmount:    e.GrossAmount,
		Fees:           e.Fees,
		PaymentMethod:  e.PaymentMethod,
		Account:        e.Account,
		Status:         e.Status,
		DocumentRef:    e.DocumentRef,
		CostCenter:     e.CostCenter,
		Recurrence:     e.Recurrence,
		DueDate:        e.DueDate,
		ActualDate:     e.ActualDate,
	}
}

// ProjectBalanceAdjustment turns an initial adjustment into synthetic income and
// a final adjustment into synthetic expense. Adjustments are always confirmed.
func ProjectBalanceAdjustment(a domain.BalanceAdjustment) domain.DailyMovement {
	typ := domain.MovementIncome
	if a.Type == domain.AdjustmentFinal {
		typ = domain.MovementExpense
	}
	return domain.DailyMovement{
		MovementID:  "adjustment-" + a.AdjustmentID,
		Source:      domain.SourceBalanceAdjustment,
		SourceID:    a.AdjustmentID,
		CompanyID:   a.CompanyID,
		Date:        a.Date,
		Type:        typ,
		Kind:        domain.KindBalanceAdjustment,
		Description: a.Description,
		Category:    string(a.Type) + " balance",
		Amount:      a.Amount,
		Account:     a.Account,
		Status:      domain.MovementConfirmed,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func recurrenceLabel(r domain.Recurrence) *string {
	if !r.IsRepeating() {
		return nil
	}
	label := string(r)
	return &label
}
