package accounting

import (
	"testing"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func payable(id, due, amount string, status domain.PayableStatus) domain.Payable {
	return domain.Payable{
		PayableID:   id,
		CompanyID:   "company-1",
		Description: "payable " + id,
		Amount:      dec(amount),
		DueDate:     due,
		Status:      status,
		Recurrence:  domain.RecurrenceNone,
		IsActive:    true,
	}
}

func paidPayable(id, due, paidOn, amount string) domain.Payable {
	p := payable(id, due, amount, domain.PayablePaid)
	p.PaymentDate = strPtr(paidOn)
	return p
}

func receivable(id, due, amount string, status domain.ReceivableStatus) domain.Receivable {
	return domain.Receivable{
		ReceivableID: id,
		CompanyID:    "company-1",
		Description:  "receivable " + id,
		Amount:       dec(amount),
		DueDate:      due,
		Status:       status,
		Recurrence:   domain.RecurrenceNone,
		IsActive:     true,
	}
}

func receivedReceivable(id, due, receivedOn, amount string) domain.Receivable {
	r := receivable(id, due, amount, domain.ReceivableReceived)
	r.ReceivedDate = strPtr(receivedOn)
	return r
}

func manualEntry(id, date, amount string, typ domain.MovementType, status domain.MovementStatus) domain.ManualEntry {
	return domain.ManualEntry{
		EntryID:     id,
		CompanyID:   "company-1",
		Date:        date,
		Type:        typ,
		Kind:        domain.KindNormal,
		Description: "entry " + id,
		Category:    "misc",
		Amount:      dec(amount),
		Status:      status,
	}
}
