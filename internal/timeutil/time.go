// Package timeutil holds the pure time helpers the tracker is built on:
// calendar-day bounds, stop-time rounding and the ISO-8601 text format
// timestamps are persisted in.
package timeutil

import (
	"fmt"
	"time"
)

// isoLayouts are the accepted stored timestamp layouts, most precise
// first. Writes always use the first one. Timestamps are local time
// without a zone designator.
var isoLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// FormatISO renders t in the persisted timestamp format.
func FormatISO(t time.Time) string {
	return t.Format(isoLayouts[0])
}

// ParseISO parses a stored timestamp, trying each accepted layout.
func ParseISO(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last second of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Second)
}

// RoundUp rounds t up to the next interval-minute boundary, anchored at
// the minute of the hour. Seconds are discarded first, so a time exactly
// on a boundary is returned unchanged. Intervals below 2 disable rounding.
func RoundUp(t time.Time, interval int) time.Time {
	if interval <= 1 {
		return t
	}
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	remainder := base.Minute() % interval
	if remainder == 0 {
		return base
	}
	return base.Add(time.Duration(interval-remainder) * time.Minute)
}

// ClockOn parses an "HH:mm" clock string and anchors it to reference's
// calendar day. Falls back to reference when the text does not parse.
func ClockOn(clock string, reference time.Time) time.Time {
	var hour, minute int
	if n, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil || n != 2 {
		return reference
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return reference
	}
	return time.Date(reference.Year(), reference.Month(), reference.Day(),
		hour, minute, 0, 0, reference.Location())
}
