package commands

import (
	"fmt"
	"time"

	"timr/internal/timeutil"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD flag value in local time.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// parseDateTime parses a flag value as either a full timestamp
// (YYYY-MM-DDTHH:mm) or an HH:mm clock anchored to day.
func parseDateTime(value string, day time.Time) (time.Time, error) {
	if t, err := timeutil.ParseISO(value); err == nil {
		return t, nil
	}
	var hour, minute int
	if n, err := fmt.Sscanf(value, "%d:%d", &hour, &minute); err == nil && n == 2 {
		return timeutil.ClockOn(value, day), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected HH:mm or YYYY-MM-DDTHH:mm", value)
}
