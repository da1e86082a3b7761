package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("03-10-2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []string{
		"2025-03-10",
		"13-10-2025",
		"03-32-2025",
		"not-a-date",
		"",
	}

	for _, token := range tests {
		t.Run(token, func(t *testing.T) {
			_, err := parseDate(token)
			assert.Error(t, err)
		})
	}
}

func TestFormatDate_NoLeadingZeros(t *testing.T) {
	d := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "3-5-2025", formatDate(d))

	d = time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12-25-2025", formatDate(d))
}

func TestFormatDate_RoundTrip(t *testing.T) {
	d, err := parseDate("12-05-2025")
	require.NoError(t, err)
	assert.Equal(t, "12-5-2025", formatDate(d))
}
