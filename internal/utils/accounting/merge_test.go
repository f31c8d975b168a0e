package accounting

import (
	"testing"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeMovements_OrderAndKeys(t *testing.T) {
	paid := paidPayable("p-paid", "2024-03-02", "2024-03-05", "300")
	set := RecordSet{
		Payables: []domain.Payable{
			payable("p1", "2024-03-01", "100", domain.PayablePending),
			paid,
		},
		Receivables: []domain.Receivable{
			receivable("r1", "2024-03-01", "400", domain.ReceivablePending),
		},
		ManualEntries: []domain.ManualEntry{
			manualEntry("m1", "2024-03-01", "50", domain.MovementExpense, domain.MovementOverdue),
		},
		BalanceAdjustments: []domain.BalanceAdjustment{
			{AdjustmentID: "a1", Date: "2024-03-01", Type: domain.AdjustmentInitial, Amount: dec("1000"), Account: "bank"},
			{AdjustmentID: "a2", Date: "2024-04-01", Type: domain.AdjustmentFinal, Amount: dec("900")},
		},
	}

	rows := MergeMovements(set, "2024-03-01", "2024-03-31")
	require.Len(t, rows, 5)

	var ids []string
	for _, r := range rows {
		ids = append(ids, r.MovementID)
	}
	assert.Equal(t, []string{
		"adjustment-a1",
		"receivable-r1",
		"payable-p1",
		"manual-m1",
		"payable-p-paid",
	}, ids)

	// payables are keyed by due date even when paid later
	assert.Equal(t, "2024-03-02", rows[4].Date)
	assert.Equal(t, domain.MovementConfirmed, rows[4].Status)
	assert.Equal(t, "2024-03-05", *rows[4].ActualDate)
}

func TestMergeMovements_StatusProjection(t *testing.T) {
	set := RecordSet{
		Payables: []domain.Payable{
			payable("p1", "2024-03-01", "100", domain.PayableOverdue),
		},
		Receivables: []domain.Receivable{
			receivedReceivable("r1", "2024-03-01", "2024-03-01", "400"),
		},
		ManualEntries: []domain.ManualEntry{
			manualEntry("m1", "2024-03-01", "50", domain.MovementExpense, domain.MovementOverdue),
		},
		BalanceAdjustments: []domain.BalanceAdjustment{
			{AdjustmentID: "a1", Date: "2024-03-01", Type: domain.AdjustmentFinal, Amount: dec("10")},
		},
	}

	rows := MergeMovements(set, "2024-03-01", "2024-03-01")
	require.Len(t, rows, 4)

	byID := map[string]domain.DailyMovement{}
	for _, r := range rows {
		byID[r.MovementID] = r
	}
	assert.Equal(t, domain.MovementPending, byID["payable-p1"].Status)
	assert.Equal(t, domain.MovementConfirmed, byID["receivable-r1"].Status)
	assert.Equal(t, domain.MovementOverdue, byID["manual-m1"].Status)

	adj := byID["adjustment-a1"]
	assert.Equal(t, domain.MovementConfirmed, adj.Status)
	assert.Equal(t, domain.MovementExpense, adj.Type)
	assert.Equal(t, domain.KindBalanceAdjustment, adj.Kind)
	assertDecimal(t, "-10", adj.Signed())
}

func TestMergeMovements_AmountsAndCategories(t *testing.T) {
	p := payable("p1", "2024-03-01", "100", domain.PayablePending)
	p.LateFees = decPtr("10")
	p.Discount = decPtr("5")
	p.CategoryID = strPtr("c-rent")
	p.Recurrence = domain.RecurrenceMonthly

	r := receivable("r1", "2024-03-01", "200", domain.ReceivablePending)
	r.Discount = decPtr("20")
	r.CategoryID = strPtr("c-missing")

	set := RecordSet{
		Payables:    []domain.Payable{p},
		Receivables: []domain.Receivable{r},
		Categories:  []domain.Category{{CategoryID: "c-rent", Name: "Rent"}},
	}

	rows := MergeMovements(set, "", "")
	require.Len(t, rows, 2)

	assert.Equal(t, "receivable-r1", rows[0].MovementID)
	assertDecimal(t, "180", rows[0].Amount)
	assertDecimal(t, "180", rows[0].Signed())
	assert.Equal(t, domain.NoCategoryLabel, rows[0].Category)
	assert.Nil(t, rows[0].Recurrence)

	assert.Equal(t, "payable-p1", rows[1].MovementID)
	assertDecimal(t, "105", rows[1].Amount)
	assertDecimal(t, "-105", rows[1].Signed())
	assert.Equal(t, "Rent", rows[1].Category)
	require.NotNil(t, rows[1].Recurrence)
	assert.Equal(t, "monthly", *rows[1].Recurrence)
}

func TestMergeMovements_Empty(t *testing.T) {
	assert.Empty(t, MergeMovements(RecordSet{}, "2024-01-01", "2024-01-31"))
}
