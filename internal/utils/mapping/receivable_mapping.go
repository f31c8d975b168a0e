package mapping

import (
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/models"
)

// ToModelReceivable converts a domain Receivable to a model Receivable
func ToModelReceivable(d domain.Receivable) models.Receivable {
	return models.Receivable{
		ReceivableID:  d.ReceivableID,
		CompanyID:     d.CompanyID,
		Description:   d.Description,
		Amount:        d.Amount,
		DueDate:       d.DueDate,
		ReceivedDate:  d.ReceivedDate,
		Status:        string(d.Status),
		Discount:      d.Discount,
		PaymentMethod: d.PaymentMethod,
		Recurrence:    string(d.Recurrence),
		RecurrenceEnd: d.RecurrenceEnd,
		IsActive:      d.IsActive,
		CategoryID:    d.CategoryID,
		ClientID:      d.ClientID,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceivable converts a model Receivable to a domain Receivable
func ToDomainReceivable(m models.Receivable) domain.Receivable {
	recurrence := domain.Recurrence(m.Recurrence)
	if recurrence == "" {
		recurrence = domain.RecurrenceNone
	}
	return domain.Receivable{
		ReceivableID:  m.ReceivableID,
		CompanyID:     m.CompanyID,
		Description:   m.Description,
		Amount:        m.Amount,
		DueDate:       m.DueDate,
		ReceivedDate:  m.ReceivedDate,
		Status:        domain.ReceivableStatus(m.Status),
		Discount:      m.Discount,
		PaymentMethod: m.PaymentMethod,
		Recurrence:    recurrence,
		RecurrenceEnd: m.RecurrenceEnd,
		IsActive:      m.IsActive,
		CategoryID:    m.CategoryID,
		ClientID:      m.ClientID,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReceivableSlice converts a slice of model Receivables to domain Receivables
func ToDomainReceivableSlice(ms []models.Receivable) []domain.Receivable {
	ds := make([]domain.Receivable, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceivable(m)
	}
	return ds
}
