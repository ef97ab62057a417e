package barcodes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid("FM1"))
	assert.True(t, Valid("1234567890"))
	assert.False(t, Valid("AB"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("FM1.2"))
	assert.False(t, Valid("..."))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, time.October, 15, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "10/15/2026, 3:04:05 PM", FormatTimestamp(ts))
}

func TestRecord_JSONShape(t *testing.T) {
	b, err := json.Marshal([]Record{{Code: "FM1", Timestamp: "1/2/2026, 9:00:00 AM"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"code":"FM1","timestamp":"1/2/2026, 9:00:00 AM"}]`, string(b))
}
