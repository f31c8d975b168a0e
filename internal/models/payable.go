package models

import "github.com/shopspring/decimal"

// Payable is the payables row. Date columns are read as YYYY-MM-DD text.
type Payable struct {
	PayableID                 string           `db:"payable_id"`
	CompanyID                 string           `db:"company_id"`
	Description               string           `db:"description"`
	Amount                    decimal.Decimal  `db:"amount"`
	DueDate                   string           `db:"due_date"`
	PaymentDate               *string          `db:"payment_date"`
	Status                    string           `db:"status"`
	LateFees                  *decimal.Decimal `db:"late_fees"`
	Discount                  *decimal.Decimal `db:"discount"`
	Recurrence                string           `db:"recurrence"`
	RecurrenceEnd             *string          `db:"recurrence_end"`
	IsActive                  bool             `db:"is_active"`
	CategoryID                *string          `db:"category_id"`
	CostCenterID              *string          `db:"cost_center_id"`
	SupplierID                *string          `db:"supplier_id"`
	PaymentMethod             *string          `db:"payment_method"`
	Notes                     *string          `db:"notes"`
	RecurrenceGroupID         *string          `db:"recurrence_group_id"`
	RecurrenceExpandedThrough *string          `db:"recurrence_expanded_through"`
	AuditFields
}
