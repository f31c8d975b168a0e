package domain

import "github.com/shopspring/decimal"

// MovementType is the direction of a cash movement.
type MovementType string

const (
	MovementIncome  MovementType = "income"
	MovementExpense MovementType = "expense"
)

// MovementKind classifies a manual entry.
type MovementKind string

const (
	KindNormal            MovementKind = "normal"
	KindBalanceAdjustment MovementKind = "balance_adjustment"
	KindWithdrawal        MovementKind = "withdrawal"
	KindInitialBalance    MovementKind = "initial_balance"
)

// MovementStatus is the settlement state of a ledger movement.
type MovementStatus string

const (
	MovementConfirmed MovementStatus = "confirmed"
	MovementPending   MovementStatus = "pending"
	MovementOverdue   MovementStatus = "overdue"
)

// ManualEntry is a free-form cash movement not tied to a payable or receivable.
// It is immutable once saved.
type ManualEntry struct {
	EntryID        string           `json:"entryID"`
	CompanyID      string           `json:"companyID"`
	Date           string           `json:"date"`
	CompetenceDate *string          `json:"competenceDate,omitempty"`
	Type           MovementType     `json:"type"`
	Kind           MovementKind     `json:"kind"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	Subcategory    *string          `json:"subcategory,omitempty"`
	Amount         decimal.Decimal  `json:"amount"`
	GrossAmount    *decimal.Decimal `json:"grossAmount,omitempty"`
	Fees           *decimal.Decimal `json:"fees,omitempty"`
	PaymentMethod  string           `json:"paymentMethod"`
	Account        string           `json:"account"`
	Status         MovementStatus   `json:"status"`
	DocumentRef    *string          `json:"documentRef,omitempty"`
	CostCenter     *string          `json:"costCenter,omitempty"`
	Recurrence     *string          `json:"recurrence,omitempty"`
	DueDate        *string          `json:"dueDate,omitempty"`
	ActualDate     *string          `json:"actualDate,omitempty"`
	AuditFields
}

// BalanceAdjustmentType marks an adjustment as an opening or closing figure.
type BalanceAdjustmentType string

const (
	AdjustmentInitial BalanceAdjustmentType = "initial"
	AdjustmentFinal   BalanceAdjustmentType = "final"
)

// BalanceAdjustment seeds or corrects the balance on a specific date.
type BalanceAdjustment struct {
	AdjustmentID string                `json:"adjustmentID"`
	CompanyID    string                `json:"companyID"`
	Date         string                `json:"date"`
	Type         BalanceAdjustmentType `json:"type"`
	Description  string                `json:"description"`
	Amount       decimal.Decimal       `json:"amount"`
	Account      string                `json:"account"`
	AuditFields
}
