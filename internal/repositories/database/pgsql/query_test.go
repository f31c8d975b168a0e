package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/cashflow_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_ledger/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery_NoFilter(t *testing.T) {
	var q listQuery
	require.NoError(t, q.applyFilter(portsrepo.ListFilter{}, payableColumns))

	sql := q.build("SELECT * FROM payables", payableColumns.orderBy(), 0)

	assert.Equal(t, "SELECT * FROM payables ORDER BY due_date, created_at, payable_id", sql)
	assert.Empty(t, q.args)
}

func TestListQuery_FullFilter(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	token := pagination.EncodeToken(pagination.Cursor{Date: "2024-03-05", CreatedAt: createdAt, ID: "p-9"})
	f := portsrepo.ListFilter{
		CompanyID:  "company-1",
		From:       "2024-03-01",
		To:         "2024-03-31",
		ActiveOnly: true,
		Limit:      25,
		NextToken:  &token,
	}

	var q listQuery
	require.NoError(t, q.applyFilter(f, payableColumns))
	sql := q.build("SELECT * FROM payables", payableColumns.orderBy(), f.Limit)

	assert.Equal(t, "SELECT * FROM payables WHERE company_id = $1 AND due_date >= $2::date AND due_date <= $3::date"+
		" AND is_active AND (due_date, created_at, payable_id) > ($4::date, $5, $6)"+
		" ORDER BY due_date, created_at, payable_id LIMIT $7", sql)
	assert.Equal(t, []any{"company-1", "2024-03-01", "2024-03-31", "2024-03-05", createdAt, "p-9", 25}, q.args)
}

func TestListQuery_ActiveOnlyIgnoredWithoutColumn(t *testing.T) {
	var q listQuery
	require.NoError(t, q.applyFilter(portsrepo.ListFilter{ActiveOnly: true}, manualEntryColumns))

	assert.Equal(t, "SELECT 1 ORDER BY entry_date, created_at, entry_id", q.build("SELECT 1", manualEntryColumns.orderBy(), 0))
}

func TestListQuery_BadToken(t *testing.T) {
	bad := "not-a-token"
	var q listQuery

	err := q.applyFilter(portsrepo.ListFilter{NextToken: &bad}, payableColumns)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDateText(t *testing.T) {
	assert.Equal(t, "to_char(due_date, 'YYYY-MM-DD')", dateText("due_date"))
}
