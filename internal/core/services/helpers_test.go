package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// fixedNow is 2024-03-15 in UTC for every service under test.
var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func testOptions() []services.Option {
	return []services.Option{
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithLocation(time.UTC),
	}
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}
