package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClockTime(t *testing.T) {
	cases := map[string]string{
		"10:30":     "10:30",
		"00:00":     "00:00",
		"23:59":     "23:59",
		"10:30 AM":  "10:30",
		"10:30 PM":  "22:30",
		"02:00 pm":  "14:00",
		"2:05 PM":   "14:05",
		"12:00 AM":  "00:00",
		"12:00 PM":  "12:00",
		"02:00PM":   "14:00",
		"9:15AM":    "09:15",
		" 10:30   ": "10:30",
	}

	for input, want := range cases {
		got, err := NormalizeClockTime(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestNormalizeClockTimeRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "25:00", "10:75", "noon", "10.30", "13:00 PM"} {
		_, err := NormalizeClockTime(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestValidCalendarDate(t *testing.T) {
	assert.True(t, ValidCalendarDate("2026-09-10"))
	assert.True(t, ValidCalendarDate("2026-02-28"))

	assert.False(t, ValidCalendarDate("2026-02-30"))
	assert.False(t, ValidCalendarDate("10-09-2026"))
	assert.False(t, ValidCalendarDate("2026/09/10"))
	assert.False(t, ValidCalendarDate(""))
}
