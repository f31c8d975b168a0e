package accounting

import (
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// RecordSet is everything the engine reads for one computation.
// Services fill it straight from the Record Store on every call.
type RecordSet struct {
	Payables           []domain.Payable
	Receivables        []domain.Receivable
	ManualEntries      []domain.ManualEntry
	BalanceAdjustments []domain.BalanceAdjustment
	Categories         []domain.Category
}

// Normalize drops duplicate records (same ID returned twice by overlapping
// queries) and, unless includeInactive is set, deactivated payables and receivables.
func (s RecordSet) Normalize(includeInactive bool) RecordSet {
	out := RecordSet{
		Payables:           make([]domain.Payable, 0, len(s.Payables)),
		Receivables:        make([]domain.Receivable, 0, len(s.Receivables)),
		ManualEntries:      make([]domain.ManualEntry, 0, len(s.ManualEntries)),
		BalanceAdjustments: make([]domain.BalanceAdjustment, 0, len(s.BalanceAdjustments)),
		Categories:         s.Categories,
	}

	seen := make(map[string]struct{})
	for _, p := range s.Payables {
		if _, dup := seen[p.PayableID]; dup {
			continue
		}
		seen[p.PayableID] = struct{}{}
		if p.IsActive || includeInactive {
			out.Payables = append(out.Payables, p)
		}
	}

	seen = make(map[string]struct{})
	for _, r := range s.Receivables {
		if _, dup := seen[r.ReceivableID]; dup {
			continue
		}
		seen[r.ReceivableID] = struct{}{}
		if r.IsActive || includeInactive {
			out.Receivables = append(out.Receivables, r)
		}
	}

	seen = make(map[string]struct{})
	for _, e := range s.ManualEntries {
		if _, dup := seen[e.EntryID]; dup {
			continue
		}
		seen[e.EntryID] = struct{}{}
		out.ManualEntries = append(out.ManualEntries, e)
	}

	seen = make(map[string]struct{})
	for _, a := range s.BalanceAdjustments {
		if _, dup := seen[a.AdjustmentID]; dup {
			continue
		}
		seen[a.AdjustmentID] = struct{}{}
		out.BalanceAdjustments = append(out.BalanceAdjustments, a)
	}

	return out
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// PayableEffectiveAmount is what actually leaves the account:
// amount plus late fees minus discount.
func PayableEffectiveAmount(p domain.Payable) decimal.Decimal {
	return p.Amount.Add(valueOrZero(p.LateFees)).Sub(valueOrZero(p.Discount))
}

// ReceivableEffectiveAmount is amount minus discount.
func ReceivableEffectiveAmount(r domain.Receivable) decimal.Decimal {
	return r.Amount.Sub(valueOrZero(r.Discount))
}

// PayableCashDate keys a payable on the ledger: settled payables land on their
// payment date, everything else on its due date.
func PayableCashDate(p domain.Payable) string {
	if p.IsSettled() && !dates.IsBlank(p.PaymentDate) {
		return dates.Deref(p.PaymentDate)
	}
	return p.DueDate
}

// ReceivableCashDate mirrors PayableCashDate using the received date.
func ReceivableCashDate(r domain.Receivable) string {
	if r.IsSettled() && !dates.IsBlank(r.ReceivedDate) {
		return dates.Deref(r.ReceivedDate)
	}
	return r.DueDate
}

// SettlementDate returns the payment date of a settled payable, "" otherwise.
func SettlementDate(p domain.Payable) string {
	if !p.IsSettled() {
		return ""
	}
	return dates.Deref(p.PaymentDate)
}

// ReceiptDate returns the received date of a settled receivable, "" otherwise.
func ReceiptDate(r domain.Receivable) string {
	if !r.IsSettled() {
		return ""
	}
	return dates.Deref(r.ReceivedDate)
}

// signedManual returns a manual entry amount with income positive.
func signedManual(e domain.ManualEntry) decimal.Decimal {
	if e.Type == domain.MovementExpense {
		return e.Amount.Neg()
	}
	return e.Amount
}

func categoryIndex(categories []domain.Category) map[string]domain.Category {
	idx := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		idx[c.CategoryID] = c
	}
	return idx
}

func categoryLabel(idx map[string]domain.Category, id *string) string {
	if id == nil {
		return domain.NoCategoryLabel
	}
	if c, ok := idx[*id]; ok {
		return c.Name
	}
	return domain.NoCategoryLabel
}
