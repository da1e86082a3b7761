package commands

import (
	"fmt"
	"time"
)

const dateLayout = "01-02-2006"

// parseDate parses an MM-DD-YYYY date token.
func parseDate(token string) (time.Time, error) {
	d, err := time.Parse(dateLayout, token)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", token, err)
	}
	return d, nil
}

// formatDate renders a date as M-D-YYYY without leading zeros, matching the
// format used in user-facing messages.
func formatDate(d time.Time) string {
	return fmt.Sprintf("%d-%d-%d", d.Month(), d.Day(), d.Year())
}
