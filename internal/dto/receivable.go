package dto

import (
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// --- Receivable DTOs ---

// CreateReceivableRequest defines the data needed to create a receivable.
type CreateReceivableRequest struct {
	CompanyID     string            `json:"companyID" binding:"required"`
	Description   string            `json:"description" binding:"required"`
	Amount        decimal.Decimal   `json:"amount" binding:"required"`
	DueDate       string            `json:"dueDate" binding:"required,isodate"`
	Discount      *decimal.Decimal  `json:"discount"`
	Recurrence    domain.Recurrence `json:"recurrence" binding:"omitempty,oneof=none weekly monthly yearly"`
	RecurrenceEnd *string           `json:"recurrenceEnd" binding:"omitempty,isodate"`
	CategoryID    *string           `json:"categoryID"`
	ClientID      *string           `json:"clientID"`
	Notes         *string           `json:"notes"`
}

// UpdateReceivableRequest defines the fields that may change on an open receivable.
type UpdateReceivableRequest struct {
	Description   *string            `json:"description"`
	Amount        *decimal.Decimal   `json:"amount"`
	DueDate       *string            `json:"dueDate" binding:"omitempty,isodate"`
	Discount      *decimal.Decimal   `json:"discount"`
	Recurrence    *domain.Recurrence `json:"recurrence" binding:"omitempty,oneof=none weekly monthly yearly"`
	RecurrenceEnd *string            `json:"recurrenceEnd" binding:"omitempty,isodate"`
	CategoryID    *string            `json:"categoryID"`
	ClientID      *string            `json:"clientID"`
	Notes         *string            `json:"notes"`
}

// ReceiveReceivableRequest settles a receivable.
type ReceiveReceivableRequest struct {
	ReceivedDate  string           `json:"receivedDate" binding:"required,isodate"`
	Discount      *decimal.Decimal `json:"discount"`
	PaymentMethod *string          `json:"paymentMethod"`
}

// ReceivableResponse defines the data returned for a receivable.
type ReceivableResponse struct {
	ReceivableID    string            `json:"receivableID"`
	CompanyID       string            `json:"companyID"`
	Description     string            `json:"description"`
	Amount          decimal.Decimal   `json:"amount"`
	EffectiveAmount decimal.Decimal   `json:"effectiveAmount"`
	DueDate         string            `json:"dueDate"`
	ReceivedDate    *string           `json:"receivedDate,omitempty"`
	Status          string            `json:"status"`
	Discount        *decimal.Decimal  `json:"discount,omitempty"`
	PaymentMethod   *string           `json:"paymentMethod,omitempty"`
	Recurrence      domain.Recurrence `json:"recurrence"`
	RecurrenceEnd   *string           `json:"recurrenceEnd,omitempty"`
	IsActive        bool              `json:"isActive"`
	CategoryID      *string           `json:"categoryID,omitempty"`
	ClientID        *string           `json:"clientID,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	CreatedBy       string            `json:"createdBy"`
	LastUpdatedAt   time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy   string            `json:"lastUpdatedBy"`
}

// ListReceivablesResponse wraps a page of receivables.
type ListReceivablesResponse struct {
	Receivables []ReceivableResponse `json:"receivables"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToReceivableResponse converts a domain.Receivable to ReceivableResponse DTO.
func ToReceivableResponse(r *domain.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ReceivableID:    r.ReceivableID,
		CompanyID:       r.CompanyID,
		Description:     r.Description,
		Amount:          r.Amount,
		EffectiveAmount: accounting.ReceivableEffectiveAmount(*r),
		DueDate:         r.DueDate,
		ReceivedDate:    r.ReceivedDate,
		Status:          string(r.Status),
		Discount:        r.Discount,
		PaymentMethod:   r.PaymentMethod,
		Recurrence:      r.Recurrence,
		RecurrenceEnd:   r.RecurrenceEnd,
		IsActive:        r.IsActive,
		CategoryID:      r.CategoryID,
		ClientID:        r.ClientID,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		CreatedBy:       r.CreatedBy,
		LastUpdatedAt:   r.LastUpdatedAt,
		LastUpdatedBy:   r.LastUpdatedBy,
	}
}

// ToListReceivableResponse converts a slice of domain.Receivable to DTOs.
func ToListReceivableResponse(receivables []domain.Receivable) []ReceivableResponse {
	res := make([]ReceivableResponse, len(receivables))
	for i := range receivables {
		res[i] = ToReceivableResponse(&receivables[i])
	}
	return res
}
