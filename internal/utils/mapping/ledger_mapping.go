package mapping

import (
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/models"
)

// ToModelManualEntry converts a domain ManualEntry to a model ManualEntry
func ToModelManualEntry(d domain.ManualEntry) models.ManualEntry {
	return models.ManualEntry{
		EntryID:        d.EntryID,
		CompanyID:      d.CompanyID,
		EntryDate:      d.Date,
		CompetenceDate: d.CompetenceDate,
		Type:           string(d.Type),
		Kind:           string(d.Kind),
		Description:    d.Description,
		Category:       d.Category,
		Subcategory:    d.Subcategory,
		Amount:         d.Amount,
		GrossAmount:    d.GrossAmount,
		Fees:           d.Fees,
		PaymentMethod:  d.PaymentMethod,
		Account:        d.Account,
		Status:         string(d.Status),
		DocumentRef:    d.DocumentRef,
		CostCenter:     d.CostCenter,
		Recurrence:     d.Recurrence,
		DueDate:        d.DueDate,
		ActualDate:     d.ActualDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainManualEntry converts a model ManualEntry to a domain ManualEntry
func ToDomainManualEntry(m models.ManualEntry) domain.ManualEntry {
	return domain.ManualEntry{
		EntryID:        m.EntryID,
		CompanyID:      m.CompanyID,
		Date:           m.EntryDate,
		CompetenceDate: m.CompetenceDate,
		Type:           domain.MovementType(m.Type),
		Kind:           domain.MovementKind(m.Kind),
		Description:    m.Description,
		Category:       m.Category,
		Subcategory:    m.Subcategory,
		Amount:         m.Amount,
		GrossAmount:    m.GrossAmount,
		Fees:           m.Fees,
		PaymentMethod:  m.PaymentMethod,
		Account:        m.Account,
		Status:         domain.MovementStatus(m.Status),
		DocumentRef:    m.DocumentRef,
		CostCenter:     m.CostCenter,
		Recurrence:     m.Recurrence,
		DueDate:        m.DueDate,
		ActualDate:     m.ActualDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBalanceAdjustment converts a domain BalanceAdjustment to its model
func ToModelBalanceAdjustment(d domain.BalanceAdjustment) models.BalanceAdjustment {
	return models.BalanceAdjustment{
		AdjustmentID:   d.AdjustmentID,
		CompanyID:      d.CompanyID,
		AdjustmentDate: d.Date,
		Type:           string(d.Type),
		Description:    d.Description,
		Amount:         d.Amount,
		Account:        d.Account,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBalanceAdjustment converts a model BalanceAdjustment to its domain form
func ToDomainBalanceAdjustment(m models.BalanceAdjustment) domain.BalanceAdjustment {
	return domain.BalanceAdjustment{
		AdjustmentID: m.AdjustmentID,
		CompanyID:    m.CompanyID,
		Date:         m.AdjustmentDate,
		Type:         domain.BalanceAdjustmentType(m.Type),
		Description:  m.Description,
		Amount:       m.Amount,
		Account:      m.Account,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		DRECategory: string(d.DRECategory),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category.
// Stored aliases are normalised on read.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Kind:        domain.MovementType(m.Kind),
		DRECategory: domain.NormalizeDRECategory(m.DRECategory),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
