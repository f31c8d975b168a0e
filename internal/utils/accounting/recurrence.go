package accounting

import (
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/domain"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
)

// MaxRecurrenceInstances caps how many periods are ever generated from one origin.
const MaxRecurrenceInstances = 100

// advance returns origin moved forward by k recurrence periods. Months and years
// are counted from the origin so a clamped day never drifts.
func advance(origin time.Time, r domain.Recurrence, k int) time.Time {
	switch r {
	case domain.RecurrenceWeekly:
		return origin.AddDate(0, 0, 7*k)
	case domain.RecurrenceMonthly:
		return dates.AddMonthsClamped(origin, k)
	case domain.RecurrenceYearly:
		return dates.AddMonthsClamped(origin, 12*k)
	}
	return origin
}

// ExpandRecurrence builds the future payables generated by a recurring origin.
//
// Instances are due one period apart, up to and including the recurrence end
// date, and never more than MaxRecurrenceInstances periods out. Due dates at or
// before the origin's RecurrenceExpandedThrough watermark were generated by an
// earlier expansion and are skipped. A non-repeating origin or a blank end date
// yields nil. Unparsable dates are returned as an error for the caller to log.
func ExpandRecurrence(origin domain.Payable, newID func() string) ([]domain.Payable, error) {
	if !origin.Recurrence.IsRepeating() || dates.IsBlank(origin.RecurrenceEnd) {
		return nil, nil
	}

	start, err := dates.Parse(origin.DueDate)
	if err != nil {
		return nil, err
	}
	end, err := dates.Parse(*origin.RecurrenceEnd)
	if err != nil {
		return nil, err
	}
	watermark := dates.Deref(origin.RecurrenceExpandedThrough)
	if watermark != "" {
		if _, err := dates.Parse(watermark); err != nil {
			return nil, err
		}
	}

	groupID := origin.PayableID
	if origin.RecurrenceGroupID != nil && *origin.RecurrenceGroupID != "" {
		groupID = *origin.RecurrenceGroupID
	}

	var instances []domain.Payable
	for k := 1; k <= MaxRecurrenceInstances; k++ {
		next := advance(start, origin.Recurrence, k)
		if next.After(end) {
			break
		}
		due := dates.Format(next)
		if watermark != "" && due <= watermark {
			continue
		}
		instances = append(instances, newRecurrenceInstance(origin, due, newID(), groupID))
	}
	return instances, nil
}

// newRecurrenceInstance leaves AuditFields zero; the caller stamps the writer.
func newRecurrenceInstance(origin domain.Payable, due, id, groupID string) domain.Payable {
	return domain.Payable{
		PayableID:         id,
		CompanyID:         origin.CompanyID,
		Description:       origin.Description,
		Amount:            origin.Amount,
		DueDate:           due,
		Status:            domain.PayablePending,
		LateFees:          origin.LateFees,
		Discount:          origin.Discount,
		Recurrence:        domain.RecurrenceNone,
		IsActive:          true,
		CategoryID:        origin.CategoryID,
		CostCenterID:      origin.CostCenterID,
		SupplierID:        origin.SupplierID,
		PaymentMethod:     origin.PaymentMethod,
		Notes:             origin.Notes,
		RecurrenceGroupID: &groupID,
	}
}

// LastDueDate returns the latest due date among instances, "" when empty.
func LastDueDate(instances []domain.Payable) string {
	last := ""
	for _, p := range instances {
		if p.DueDate > last {
			last = p.DueDate
		}
	}
	return last
}
