package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor is the keyset position of the last row of a page: the record's
// calendar date, its creation time and its ID as a final tie-breaker.
type Cursor struct {
	Date      string
	CreatedAt time.Time
	ID        string
}

// EncodeToken creates a base64 encoded token from a cursor.
// This is used for consistent pagination across the record repositories.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", c.Date, c.CreatedAt.Format(timeFormat), c.ID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	if _, err := dates.Parse(parts[0]); err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	if parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (missing id)")
	}

	return Cursor{Date: parts[0], CreatedAt: createdAt, ID: parts[2]}, nil
}

// NextToken returns a token for the page after rows when the page is full,
// nil otherwise. cursorOf extracts the keyset position of a row.
func NextToken[T any](rows []T, limit int, cursorOf func(T) Cursor) *string {
	if limit <= 0 || len(rows) < limit {
		return nil
	}
	token := EncodeToken(cursorOf(rows[len(rows)-1]))
	return &token
}
