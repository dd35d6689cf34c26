package field

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpString(t *testing.T) {
	assert.Equal(t, "eq", OpEQ.String())
	assert.Equal(t, "has_prefix", OpHasPrefix.String())
	assert.Equal(t, "Op(42)", Op(42).String())
}

func TestOpTokenUnknownDialect(t *testing.T) {
	_, err := opToken("soap", OpEQ, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dialect "soap"`)
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), "1/5/2024"},
		{time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC), "11/30/2024"},
		{time.Date(2025, time.December, 1, 12, 30, 0, 0, time.UTC), "12/1/2025"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDate(tt.in))
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "T", formatValue(true))
	assert.Equal(t, "F", formatValue(false))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "Acme", formatValue("Acme"))
	assert.Equal(t, "3/14/2025", formatValue(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)))
}
