package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "ISO", input: "2024-03-15", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "European", input: "15.03.2024", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "SlashEuropean", input: "15/03/2024", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "ExtraSpaces", input: "  2024-03-15  ", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Empty", input: "", wantErr: true},
		{name: "Garbage", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDateString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(parsed))
		})
	}
}

func TestYearMonth(t *testing.T) {
	date := time.Date(2024, 11, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-11", YearMonth(date))
}

func TestStartOfMonth(t *testing.T) {
	date := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(date))
}

func TestToISODate(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", ToISODate(date))
}
