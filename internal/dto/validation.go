package dto

import (
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules used by the request DTOs.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("isodate", isoDate)
}

// isoDate accepts YYYY-MM-DD calendar dates.
func isoDate(fl validator.FieldLevel) bool {
	return dates.IsValid(fl.Field().String())
}
