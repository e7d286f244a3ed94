package utils

import (
	"fmt"
	"strings"
	"time"
)

// Accepted clock layouts. Callers send either 24-hour "HH:MM" or the
// "hh:mm AM/PM" form; both are normalized to 24-hour at the boundary.
var clockLayouts = []string{"15:04", "03:04 PM", "3:04 PM", "03:04PM", "3:04PM"}

// NormalizeClockTime parses a time-of-day string in any accepted form and
// returns it as 24-hour "HH:MM".
func NormalizeClockTime(value string) (string, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time of day: %q", value)
}

// ValidCalendarDate reports whether value is a YYYY-MM-DD calendar date.
func ValidCalendarDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
