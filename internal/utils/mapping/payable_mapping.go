package mapping

import (
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/models"
)

// ToModelPayable converts a domain Payable to a model Payable
func ToModelPayable(d domain.Payable) models.Payable {
	return models.Payable{
		PayableID:                 d.PayableID,
		CompanyID:                 d.CompanyID,
		Description:               d.Description,
		Amount:                    d.Amount,
		DueDate:                   d.DueDate,
		PaymentDate:               d.PaymentDate,
		Status:                    string(d.Status),
		LateFees:                  d.LateFees,
		Discount:                  d.Discount,
		Recurrence:                string(d.Recurrence),
		RecurrenceEnd:             d.RecurrenceEnd,
		IsActive:                  d.IsActive,
		CategoryID:                d.CategoryID,
		CostCenterID:              d.CostCenterID,
		SupplierID:                d.SupplierID,
		PaymentMethod:             d.PaymentMethod,
		Notes:                     d.Notes,
		RecurrenceGroupID:         d.RecurrenceGroupID,
		RecurrenceExpandedThrough: d.RecurrenceExpandedThrough,
		AuditFields:               ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayable converts a model Payable to a domain Payable.
// A missing recurrence reads as none.
func ToDomainPayable(m models.Payable) domain.Payable {
	recurrence := domain.Recurrence(m.Recurrence)
	if recurrence == "" {
		recurrence = domain.RecurrenceNone
	}
	return domain.Payable{
		PayableID:                 m.PayableID,
		CompanyID:                 m.CompanyID,
		Description:               m.Description,
		Amount:                    m.Amount,
		DueDate:                   m.DueDate,
		PaymentDate:               m.PaymentDate,
		Status:                    domain.PayableStatus(m.Status),
		LateFees:                  m.LateFees,
		Discount:                  m.Discount,
		Recurrence:                recurrence,
		RecurrenceEnd:             m.RecurrenceEnd,
		IsActive:                  m.IsActive,
		CategoryID:                m.CategoryID,
		CostCenterID:              m.CostCenterID,
		SupplierID:                m.SupplierID,
		PaymentMethod:             m.PaymentMethod,
		Notes:                     m.Notes,
		RecurrenceGroupID:         m.RecurrenceGroupID,
		RecurrenceExpandedThrough: m.RecurrenceExpandedThrough,
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPayableSlice converts a slice of model Payables to domain Payables
func ToDomainPayableSlice(ms []models.Payable) []domain.Payable {
	ds := make([]domain.Payable, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayable(m)
	}
	return ds
}
