package services

import (
	"strings"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
	"github.com/shopspring/decimal"
)

func requirePositive(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError("%s must be greater than zero", field)
	}
	return nil
}

func requireNonNegative(field string, amount *decimal.Decimal) error {
	if amount != nil && amount.IsNegative() {
		return apperrors.NewValidationError("%s must not be negative", field)
	}
	return nil
}

func requireDate(field, value string) error {
	if !dates.IsValid(value) {
		return apperrors.NewValidationError("%s must be a YYYY-MM-DD date, got %q", field, value)
	}
	return nil
}

func requireOptionalDate(field string, value *string) error {
	if dates.IsBlank(value) {
		return nil
	}
	return requireDate(field, *value)
}

// requireRange checks an optional inclusive range.
func requireRange(start, end string) error {
	if start != "" {
		if err := requireDate("startDate", start); err != nil {
			return err
		}
	}
	if end != "" {
		if err := requireDate("endDate", end); err != nil {
			return err
		}
	}
	if start != "" && end != "" && start > end {
		return apperrors.NewValidationError("startDate %s is after endDate %s", start, end)
	}
	return nil
}

// blankToNil normalises optional text so whitespace-only input is stored as NULL.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func listFilter(params dto.ListRecordsParams) (portsrepo.ListFilter, error) {
	if strings.TrimSpace(params.CompanyID) == "" {
		return portsrepo.ListFilter{}, apperrors.NewValidationError("companyId is required")
	}
	if err := requireRange(params.StartDate, params.EndDate); err != nil {
		return portsrepo.ListFilter{}, err
	}
	return portsrepo.ListFilter{
		CompanyID:  params.CompanyID,
		From:       params.StartDate,
		To:         params.EndDate,
		ActiveOnly: !params.IncludeInactive,
		Limit:      params.Limit,
		NextToken:  params.NextToken,
	}, nil
}
