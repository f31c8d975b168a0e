package dto

import (
	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
)

// ListRecordsParams defines query parameters for listing payables, receivables
// and manual entries.
type ListRecordsParams struct {
	CompanyID       string  `form:"companyId" binding:"required"`
	StartDate       string  `form:"startDate" binding:"omitempty,isodate"`
	EndDate         string  `form:"endDate" binding:"omitempty,isodate"`
	IncludeInactive bool    `form:"includeInactive"`
	Limit           int     `form:"limit,default=20" binding:"min=0,max=500"`
	NextToken       *string `form:"nextToken"`
}

// CashFlowParams defines query parameters shared by the cash flow endpoints.
// Either period or both dates are given; an explicit range wins.
type CashFlowParams struct {
	CompanyID string `form:"companyId"`
	StartDate string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate"`
	Period    string `form:"period" binding:"omitempty,oneof=daily weekly monthly"`
}

// ToQuery converts params to the service-level query.
func (p CashFlowParams) ToQuery() domain.CashFlowQuery {
	q := domain.CashFlowQuery{
		CompanyID: p.CompanyID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Period:    domain.CashFlowPeriod(p.Period),
	}
	if q.StartDate == "" && q.Period == "" {
		q.Period = domain.PeriodMonthly
	}
	return q
}

// CompanyParams carries the company filter alone.
type CompanyParams struct {
	CompanyID string `form:"companyId"`
}

// DREParams selects the month of the income statement.
type DREParams struct {
	CompanyID string `form:"companyId"`
	Year      int    `form:"year" binding:"required,min=1900,max=9999"`
	Month     int    `form:"month" binding:"required,min=1,max=12"`
}

// MovementsResponse lists the merged ledger rows of a window.
type MovementsResponse struct {
	Movements []domain.DailyMovement `json:"movements"`
}

// AlertsResponse lists every active alert.
type AlertsResponse struct {
	Alerts []domain.Alert `json:"alerts"`
	Count  int            `json:"count"`
}

// ExpandRecurrenceResponse reports how many instances an expansion created.
type ExpandRecurrenceResponse struct {
	PayableID string `json:"payableID"`
	Created   int    `json:"created"`
}
