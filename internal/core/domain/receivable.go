package domain

import "github.com/shopspring/decimal"

// ReceivableStatus is the settlement state of a receivable.
type ReceivableStatus string

const (
	ReceivablePending  ReceivableStatus = "pending"
	ReceivableReceived ReceivableStatus = "received"
	ReceivableOverdue  ReceivableStatus = "overdue"
)

// Receivable is a right to receive money. Mirrors Payable.
type Receivable struct {
	ReceivableID  string           `json:"receivableID"`
	CompanyID     string           `json:"companyID"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount"`
	DueDate       string           `json:"dueDate"`
	ReceivedDate  *string          `json:"receivedDate,omitempty"`
	Status        ReceivableStatus `json:"status"`
	Discount      *decimal.Decimal `json:"discount,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Recurrence    Recurrence       `json:"recurrence"`
	RecurrenceEnd *string          `json:"recurrenceEnd,omitempty"`
	IsActive      bool             `json:"isActive"`
	CategoryID    *string          `json:"categoryID,omitempty"`
	ClientID      *string          `json:"clientID,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	AuditFields
}

// IsSettled reports whether the receivable has been received.
func (r Receivable) IsSettled() bool {
	return r.Status == ReceivableReceived
}
