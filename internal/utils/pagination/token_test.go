package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Standard values
	cursor := Cursor{
		Date:      "2023-05-15",
		CreatedAt: time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "0b7c5c1e-4d0a-4f59-8f7e-1a2b3c4d5e6f",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	require.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, cursor.Date, decoded.Date)
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt), "Created at time should match after decode")
	assert.Equal(t, cursor.ID, decoded.ID)

	// IDs may contain the separator in theory; only the first two are split on
	odd := Cursor{Date: "2024-01-01", CreatedAt: time.Unix(0, 0).UTC(), ID: "a|b"}
	decoded, err = DecodeToken(EncodeToken(odd))
	require.NoError(t, err)
	assert.Equal(t, "a|b", decoded.ID)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	encode := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	_, err = DecodeToken(encode("2023-05-15"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeToken(encode("15/05/2023|2023-05-15T14:30:45Z|id"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	_, err = DecodeToken(encode("2023-05-15|yesterday|id"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")

	_, err = DecodeToken(encode("2023-05-15|2023-05-15T14:30:45Z|"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestNextToken(t *testing.T) {
	rows := []Cursor{
		{Date: "2024-01-01", CreatedAt: time.Unix(10, 0).UTC(), ID: "a"},
		{Date: "2024-01-02", CreatedAt: time.Unix(20, 0).UTC(), ID: "b"},
	}
	identity := func(c Cursor) Cursor { return c }

	assert.Nil(t, NextToken(rows, 3, identity), "short page has no next token")
	assert.Nil(t, NextToken(rows, 0, identity), "unlimited listing has no next token")

	token := NextToken(rows, 2, identity)
	require.NotNil(t, token)
	decoded, err := DecodeToken(*token)
	require.NoError(t, err)
	assert.Equal(t, "b", decoded.ID)
	assert.Equal(t, "2024-01-02", decoded.Date)
}
