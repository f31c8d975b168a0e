package dto

import (
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// --- Payable DTOs ---

// CreatePayableRequest defines the data needed to create a payable.
type CreatePayableRequest struct {
	CompanyID     string            `json:"companyID" binding:"required"`
	Description   string            `json:"description" binding:"required"`
	Amount        decimal.Decimal   `json:"amount" binding:"required"`
	DueDate       string            `json:"dueDate" binding:"required,isodate"`
	LateFees      *decimal.Decimal  `json:"lateFees"`
	Discount      *decimal.Decimal  `json:"discount"`
	Recurrence    domain.Recurrence `json:"recurrence" binding:"omitempty,oneof=none weekly monthly yearly"`
	RecurrenceEnd *string           `json:"recurrenceEnd" binding:"omitempty,isodate"`
	CategoryID    *string           `json:"categoryID"`
	CostCenterID  *string           `json:"costCenterID"`
	SupplierID    *string           `json:"supplierID"`
	PaymentMethod *string           `json:"paymentMethod"`
	Notes         *string           `json:"notes"`
}

// UpdatePayableRequest defines the fields that may change on an open payable.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePayableRequest struct {
	Description   *string            `json:"description"`
	Amount        *decimal.Decimal   `json:"amount"`
	DueDate       *string            `json:"dueDate" binding:"omitempty,isodate"`
	LateFees      *decimal.Decimal   `json:"lateFees"`
	Discount      *decimal.Decimal   `json:"discount"`
	Recurrence    *domain.Recurrence `json:"recurrence" binding:"omitempty,oneof=none weekly monthly yearly"`
	RecurrenceEnd *string            `json:"recurrenceEnd" binding:"omitempty,isodate"`
	CategoryID    *string            `json:"categoryID"`
	CostCenterID  *string            `json:"costCenterID"`
	SupplierID    *string            `json:"supplierID"`
	PaymentMethod *string            `json:"paymentMethod"`
	Notes         *string            `json:"notes"`
}

// PayPayableRequest settles a payable.
type PayPayableRequest struct {
	PaymentDate   string           `json:"paymentDate" binding:"required,isodate"`
	LateFees      *decimal.Decimal `json:"lateFees"`
	Discount      *decimal.Decimal `json:"discount"`
	PaymentMethod *string          `json:"paymentMethod"`
}

// PayableResponse defines the data returned for a payable.
type PayableResponse struct {
	PayableID         string            `json:"payableID"`
	CompanyID         string            `json:"companyID"`
	Description       string            `json:"description"`
	Amount            decimal.Decimal   `json:"amount"`
	EffectiveAmount   decimal.Decimal   `json:"effectiveAmount"`
	DueDate           string            `json:"dueDate"`
	PaymentDate       *string           `json:"paymentDate,omitempty"`
	Status            string            `json:"status"`
	LateFees          *decimal.Decimal  `json:"lateFees,omitempty"`
	Discount          *decimal.Decimal  `json:"discount,omitempty"`
	Recurrence        domain.Recurrence `json:"recurrence"`
	RecurrenceEnd     *string           `json:"recurrenceEnd,omitempty"`
	RecurrenceGroupID *string           `json:"recurrenceGroupID,omitempty"`
	IsActive          bool              `json:"isActive"`
	CategoryID        *string           `json:"categoryID,omitempty"`
	CostCenterID      *string           `json:"costCenterID,omitempty"`
	SupplierID        *string           `json:"supplierID,omitempty"`
	PaymentMethod     *string           `json:"paymentMethod,omitempty"`
	Notes             *string           `json:"notes,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	CreatedBy         string            `json:"createdBy"`
	LastUpdatedAt     time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy     string            `json:"lastUpdatedBy"`
}

// ListPayablesResponse wraps a page of payables.
type ListPayablesResponse struct {
	Payables  []PayableResponse `json:"payables"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPayableResponse converts a domain.Payable to PayableResponse DTO.
func ToPayableResponse(p *domain.Payable) PayableResponse {
	return PayableResponse{
		PayableID:         p.PayableID,
		CompanyID:         p.CompanyID,
		Description:       p.Description,
		Amount:            p.Amount,
		EffectiveAmount:   accounting.PayableEffectiveAmount(*p),
		DueDate:           p.DueDate,
		PaymentDate:       p.PaymentDate,
		Status:            string(p.Status),
		LateFees:          p.LateFees,
		Discount:          p.Discount,
		Recurrence:        p.Recurrence,
		RecurrenceEnd:     p.RecurrenceEnd,
		RecurrenceGroupID: p.RecurrenceGroupID,
		IsActive:          p.IsActive,
		CategoryID:        p.CategoryID,
		CostCenterID:      p.CostCenterID,
		SupplierID:        p.SupplierID,
		PaymentMethod:     p.PaymentMethod,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		CreatedBy:         p.CreatedBy,
		LastUpdatedAt:     p.LastUpdatedAt,
		LastUpdatedBy:     p.LastUpdatedBy,
	}
}

// ToListPayableResponse converts a slice of domain.Payable to a slice of PayableResponse DTOs
func ToListPayableResponse(payables []domain.Payable) []PayableResponse {
	res := make([]PayableResponse, len(payables))
	for i := range payables {
		res[i] = ToPayableResponse(&payables[i])
	}
	return res
}
