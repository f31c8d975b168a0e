package accounting

import (
	"testing"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveAmounts(t *testing.T) {
	p := payable("p1", "2024-03-10", "1000", domain.PayablePending)
	p.LateFees = decPtr("25.50")
	p.Discount = decPtr("10")
	assertDecimal(t, "1015.50", PayableEffectiveAmount(p))

	r := receivable("r1", "2024-03-10", "500", domain.ReceivablePending)
	assertDecimal(t, "500", ReceivableEffectiveAmount(r))
	r.Discount = decPtr("20")
	assertDecimal(t, "480", ReceivableEffectiveAmount(r))
}

func TestCashDates(t *testing.T) {
	pending := payable("p1", "2024-03-10", "100", domain.PayablePending)
	assert.Equal(t, "2024-03-10", PayableCashDate(pending))
	assert.Equal(t, "", SettlementDate(pending))

	paid := paidPayable("p2", "2024-03-10", "2024-03-08", "100")
	assert.Equal(t, "2024-03-08", PayableCashDate(paid))
	assert.Equal(t, "2024-03-08", SettlementDate(paid))

	paidNoDate := payable("p3", "2024-03-10", "100", domain.PayablePaid)
	assert.Equal(t, "2024-03-10", PayableCashDate(paidNoDate), "paid without a payment date falls back to due date")

	received := receivedReceivable("r1", "2024-03-10", "2024-03-12", "100")
	assert.Equal(t, "2024-03-12", ReceivableCashDate(received))
	assert.Equal(t, "2024-03-12", ReceiptDate(received))
	assert.Equal(t, "", ReceiptDate(receivable("r2", "2024-03-10", "1", domain.ReceivableOverdue)))
}

func TestRecordSetNormalize(t *testing.T) {
	inactive := payable("p2", "2024-01-02", "50", domain.PayablePending)
	inactive.IsActive = false

	set := RecordSet{
		Payables: []domain.Payable{
			payable("p1", "2024-01-01", "10", domain.PayablePending),
			payable("p1", "2024-01-01", "10", domain.PayablePending),
			inactive,
		},
		Receivables: []domain.Receivable{
			receivable("r1", "2024-01-01", "10", domain.ReceivablePending),
			receivable("r1", "2024-01-01", "10", domain.ReceivablePending),
		},
		ManualEntries: []domain.ManualEntry{
			manualEntry("m1", "2024-01-01", "5", domain.MovementIncome, domain.MovementConfirmed),
			manualEntry("m1", "2024-01-01", "5", domain.MovementIncome, domain.MovementConfirmed),
		},
	}

	active := set.Normalize(false)
	require.Len(t, active.Payables, 1)
	assert.Equal(t, "p1", active.Payables[0].PayableID)
	assert.Len(t, active.Receivables, 1)
	assert.Len(t, active.ManualEntries, 1)

	all := set.Normalize(true)
	assert.Len(t, all.Payables, 2)
}

func TestCategoryLabel(t *testing.T) {
	idx := categoryIndex([]domain.Category{{CategoryID: "c1", Name: "Rent"}})
	assert.Equal(t, "Rent", categoryLabel(idx, strPtr("c1")))
	assert.Equal(t, domain.NoCategoryLabel, categoryLabel(idx, strPtr("deleted")))
	assert.Equal(t, domain.NoCategoryLabel, categoryLabel(idx, nil))
}
