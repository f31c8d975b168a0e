package domain

import (
	"github.com/shopspring/decimal"
)

// PayableStatus is the settlement state of a payable.
type PayableStatus string

const (
	PayablePending PayableStatus = "pending"
	PayablePaid    PayableStatus = "paid"
	PayableOverdue PayableStatus = "overdue"
)

// Recurrence describes how often a scheduled obligation repeats.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// IsRepeating reports whether r generates future instances.
func (r Recurrence) IsRepeating() bool {
	switch r {
	case RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Payable is an obligation to pay. Dates are YYYY-MM-DD strings.
type Payable struct {
	PayableID     string           `json:"payableID"`
	CompanyID     string           `json:"companyID"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount"`
	DueDate       string           `json:"dueDate"`
	PaymentDate   *string          `json:"paymentDate,omitempty"`
	Status        PayableStatus    `json:"status"`
	LateFees      *decimal.Decimal `json:"lateFees,omitempty"`
	Discount      *decimal.Decimal `json:"discount,omitempty"`
	Recurrence    Recurrence       `json:"recurrence"`
	RecurrenceEnd *string          `json:"recurrenceEnd,omitempty"`
	IsActive      bool             `json:"isActive"`
	CategoryID    *string          `json:"categoryID,omitempty"`
	CostCenterID  *string          `json:"costCenterID,omitempty"`
	SupplierID    *string          `json:"supplierID,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Notes         *string          `json:"notes,omitempty"`

	// RecurrenceGroupID points at the origin payable for generated instances,
	// and at itself for an origin that has been expanded.
	RecurrenceGroupID *string `json:"recurrenceGroupID,omitempty"`
	// RecurrenceExpandedThrough is the last due date already generated from this origin.
	RecurrenceExpandedThrough *string `json:"recurrenceExpandedThrough,omitempty"`

	AuditFields
}

// IsSettled reports whether the payable has been paid.
func (p Payable) IsSettled() bool {
	return p.Status == PayablePaid
}
