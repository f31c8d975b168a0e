package models

import "github.com/shopspring/decimal"

// Receivable is the receivables row.
type Receivable struct {
	ReceivableID  string           `db:"receivable_id"`
	CompanyID     string           `db:"company_id"`
	Description   string           `db:"description"`
	Amount        decimal.Decimal  `db:"amount"`
	DueDate       string           `db:"due_date"`
	ReceivedDate  *string          `db:"received_date"`
	Status        string           `db:"status"`
	Discount      *decimal.Decimal `db:"discount"`
	PaymentMethod *string          `db:"payment_method"`
	Recurrence    string           `db:"recurrence"`
	RecurrenceEnd *string          `db:"recurrence_end"`
	IsActive      bool             `db:"is_active"`
	CategoryID    *string          `db:"category_id"`
	ClientID      *string          `db:"client_id"`
	Notes         *string          `db:"notes"`
	AuditFields
}
