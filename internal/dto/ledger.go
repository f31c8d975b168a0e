package dto

import (
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Manual entry, balance adjustment and category DTOs ---

// CreateManualEntryRequest defines a free-form cash movement.
type CreateManualEntryRequest struct {
	CompanyID      string                `json:"companyID" binding:"required"`
	Date           string                `json:"date" binding:"required,isodate"`
	CompetenceDate *string               `json:"competenceDate" binding:"omitempty,isodate"`
	Type           domain.MovementType   `json:"type" binding:"required,oneof=income expense"`
	Kind           domain.MovementKind   `json:"kind" binding:"omitempty,oneof=normal balance_adjustment withdrawal initial_balance"`
	Description    string                `json:"description" binding:"required"`
	Category       string                `json:"category" binding:"required"`
	Subcategory    *string               `json:"subcategory"`
	Amount         decimal.Decimal       `json:"amount" binding:"required"`
	GrossAmount    *decimal.Decimal      `json:"grossAmount"`
	Fees           *decimal.Decimal      `json:"fees"`
	PaymentMethod  string                `json:"paymentMethod"`
	Account        string                `json:"account"`
	Status         domain.MovementStatus `json:"status" binding:"omitempty,oneof=confirmed pending overdue"`
	DocumentRef    *string               `json:"documentRef"`
	CostCenter     *string               `json:"costCenter"`
	Recurrence     *string               `json:"recurrence"`
	DueDate        *string               `json:"dueDate" binding:"omitempty,isodate"`
	ActualDate     *string               `json:"actualDate" binding:"omitempty,isodate"`
}

// CreateBalanceAdjustmentRequest seeds or corrects a balance.
type CreateBalanceAdjustmentRequest struct {
	CompanyID   string                       `json:"companyID" binding:"required"`
	Date        string                       `json:"date" binding:"required,isodate"`
	Type        domain.BalanceAdjustmentType `json:"type" binding:"required,oneof=initial final"`
	Description string                       `json:"description"`
	Amount      decimal.Decimal              `json:"amount" binding:"required"`
	Account     string                       `json:"account"`
}

// CreateCategoryRequest defines a category and its income statement tag.
// dreCategory accepts the aliases "revenue" and "expenses".
type CreateCategoryRequest struct {
	CompanyID   string              `json:"companyID" binding:"required"`
	Name        string              `json:"name" binding:"required"`
	Kind        domain.MovementType `json:"kind" binding:"required,oneof=income expense"`
	DRECategory string              `json:"dreCategory" binding:"omitempty,oneof=gross_revenue revenue deductions costs operational_expenses expenses"`
}

// ListManualEntriesResponse wraps a page of manual entries.
type ListManualEntriesResponse struct {
	ManualEntries []domain.ManualEntry `json:"manualEntries"`
	NextToken     *string              `json:"nextToken,omitempty"`
}
