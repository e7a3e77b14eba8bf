package models

import (
	"fmt"
	"time"

	"timr/internal/timeutil"
)

// DateFilter selects which calendar-day window of activities to load.
type DateFilter struct {
	kind  filterKind
	date  time.Time
	until time.Time
}

type filterKind int

const (
	filterAll filterKind = iota
	filterToday
	filterYesterday
	filterOn
	filterFrom
	filterRange
)

func FilterAll() DateFilter       { return DateFilter{kind: filterAll} }
func FilterToday() DateFilter     { return DateFilter{kind: filterToday} }
func FilterYesterday() DateFilter { return DateFilter{kind: filterYesterday} }

// FilterOn selects activities started on one calendar day.
func FilterOn(date time.Time) DateFilter {
	return DateFilter{kind: filterOn, date: date}
}

// FilterFrom selects activities from the start of date's day until now.
func FilterFrom(date time.Time) DateFilter {
	return DateFilter{kind: filterFrom, date: date}
}

// FilterRange selects an inclusive day-bounded window. The two dates may
// arrive in either order.
func FilterRange(a, b time.Time) DateFilter {
	return DateFilter{kind: filterRange, date: a, until: b}
}

// IsAll reports whether the filter imposes no window at all.
func (f DateFilter) IsAll() bool { return f.kind == filterAll }

// Bounds resolves the filter to a [from, to] window relative to now.
// ok is false for the unbounded All filter.
func (f DateFilter) Bounds(now time.Time) (from, to time.Time, ok bool) {
	switch f.kind {
	case filterToday:
		return timeutil.StartOfDay(now), timeutil.EndOfDay(now), true
	case filterYesterday:
		y := now.AddDate(0, 0, -1)
		return timeutil.StartOfDay(y), timeutil.EndOfDay(y), true
	case filterOn:
		return timeutil.StartOfDay(f.date), timeutil.EndOfDay(f.date), true
	case filterFrom:
		return timeutil.StartOfDay(f.date), now, true
	case filterRange:
		lower, upper := f.date, f.until
		if upper.Before(lower) {
			lower, upper = upper, lower
		}
		return timeutil.StartOfDay(lower), timeutil.EndOfDay(upper), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Title is the window's label for list headers.
func (f DateFilter) Title() string {
	const day = "Jan 2, 2006"
	switch f.kind {
	case filterToday:
		return "Today"
	case filterYesterday:
		return "Yesterday"
	case filterOn:
		return "On " + f.date.Format(day)
	case filterFrom:
		return "From " + f.date.Format(day)
	case filterRange:
		lower, upper := f.date, f.until
		if upper.Before(lower) {
			lower, upper = upper, lower
		}
		return fmt.Sprintf("%s - %s", lower.Format(day), upper.Format(day))
	default:
		return "All"
	}
}
