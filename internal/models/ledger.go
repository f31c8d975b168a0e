package models

import "github.com/shopspring/decimal"

// ManualEntry is the manual_entries row.
type ManualEntry struct {
	EntryID        string           `db:"entry_id"`
	CompanyID      string           `db:"company_id"`
	EntryDate      string           `db:"entry_date"`
	CompetenceDate *string          `db:"competence_date"`
	Type           string           `db:"type"`
	Kind           string           `db:"kind"`
	Description    string           `db:"description"`
	Category       string           `db:"category"`
	Subcategory    *string          `db:"subcategory"`
	Amount         decimal.Decimal  `db:"amount"`
	GrossAmount    *decimal.Decimal `db:"gross_amount"`
	Fees           *decimal.Decimal `db:"fees"`
	PaymentMethod  string           `db:"payment_method"`
	Account        string           `db:"account"`
	Status         string           `db:"status"`
	DocumentRef    *string          `db:"document_ref"`
	CostCenter     *string          `db:"cost_center"`
	Recurrence     *string          `db:"recurrence"`
	DueDate        *string          `db:"due_date"`
	ActualDate     *string          `db:"actual_date"`
	AuditFields
}

// BalanceAdjustment is the balance_adjustments row.
type BalanceAdjustment struct {
	AdjustmentID   string          `db:"adjustment_id"`
	CompanyID      string          `db:"company_id"`
	AdjustmentDate string          `db:"adjustment_date"`
	Type           string          `db:"type"`
	Description    string          `db:"description"`
	Amount         decimal.Decimal `db:"amount"`
	Account        string          `db:"account"`
	AuditFields
}

// Category is the categories row. An untagged category stores an empty dre_category.
type Category struct {
	CategoryID  string `db:"category_id"`
	CompanyID   string `db:"company_id"`
	Name        string `db:"name"`
	Kind        string `db:"kind"`
	DRECategory string `db:"dre_category"`
	AuditFields
}
