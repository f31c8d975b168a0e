package accounting

import (
	"fmt"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateAlerts enumerates every alert condition. Rules are independent; one
// alert per matching record, no digesting.
func GenerateAlerts(set RecordSet, currentBalance decimal.Decimal, today string) []domain.Alert {
	alerts := make([]domain.Alert, 0)

	if currentBalance.IsNegative() {
		amount := currentBalance
		alerts = append(alerts, domain.Alert{
			AlertID:  "negative-balance",
			Type:     domain.AlertNegativeBalance,
			Severity: domain.SeverityHigh,
			Message:  fmt.Sprintf("Negative balance: %s", currentBalance.StringFixed(2)),
			Amount:   &amount,
		})
	}

	for _, p := range set.Payables {
		if !p.IsActive || p.IsSettled() {
			continue
		}
		amount := PayableEffectiveAmount(p)
		id := p.PayableID
		switch {
		case p.DueDate < today:
			alerts = append(alerts, domain.Alert{
				AlertID:   "payable-overdue-" + id,
				Type:      domain.AlertOverdueAccount,
				Severity:  domain.SeverityHigh,
				Message:   fmt.Sprintf("Payment OVERDUE: %s (due %s, %s)", p.Description, p.DueDate, amount.StringFixed(2)),
				Amount:    &amount,
				RelatedID: &id,
			})
		case p.DueDate == today:
			alerts = append(alerts, domain.Alert{
				AlertID:   "payable-due-today-" + id,
				Type:      domain.AlertOverdueAccount,
				Severity:  domain.SeverityMedium,
				Message:   fmt.Sprintf("Pay TODAY: %s (%s)", p.Description, amount.StringFixed(2)),
				Amount:    &amount,
				RelatedID: &id,
			})
		}
	}

	for _, r := range set.Receivables {
		if !r.IsActive || r.IsSettled() {
			continue
		}
		amount := ReceivableEffectiveAmount(r)
		id := r.ReceivableID
		switch {
		case r.DueDate < today:
			alerts = append(alerts, domain.Alert{
				AlertID:   "receivable-overdue-" + id,
				Type:      domain.AlertLateReceipt,
				Severity:  domain.SeverityHigh,
				Message:   fmt.Sprintf("Receipt OVERDUE: %s (due %s, %s)", r.Description, r.DueDate, amount.StringFixed(2)),
				Amount:    &amount,
				RelatedID: &id,
			})
		case r.DueDate == today:
			alerts = append(alerts, domain.Alert{
				AlertID:   "receivable-due-today-" + id,
				Type:      domain.AlertLateReceipt,
				Severity:  domain.SeverityMedium,
				Message:   fmt.Sprintf("Receive TODAY: %s (%s)", r.Description, amount.StringFixed(2)),
				Amount:    &amount,
				RelatedID: &id,
			})
		}
	}

	return alerts
}
