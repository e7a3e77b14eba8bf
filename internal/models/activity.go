package models

import (
	"fmt"
	"time"
)

// ActivityType is the closed set of categories an activity can belong to.
type ActivityType string

const (
	TypeBug         ActivityType = "BUG"
	TypeDevelop     ActivityType = "DEVELOP"
	TypeGeneral     ActivityType = "GENERAL"
	TypeInfra       ActivityType = "INFRA"
	TypeMeeting     ActivityType = "MEETING"
	TypeOutOfOffice ActivityType = "OUT_OF_OFFICE"
	TypeProblem     ActivityType = "PROBLEM"
	TypeSupport     ActivityType = "SUPPORT"
)

// ActivityTypes lists every valid type in display order.
var ActivityTypes = []ActivityType{
	TypeBug,
	TypeDevelop,
	TypeGeneral,
	TypeInfra,
	TypeMeeting,
	TypeOutOfOffice,
	TypeProblem,
	TypeSupport,
}

// ParseActivityType maps stored text to a type. Unknown values fall back
// to GENERAL so legacy rows keep loading.
func ParseActivityType(raw string) ActivityType {
	for _, t := range ActivityTypes {
		if string(t) == raw {
			return t
		}
	}
	return TypeGeneral
}

// DisplayName returns the human-readable label for the type.
func (t ActivityType) DisplayName() string {
	switch t {
	case TypeBug:
		return "Bug"
	case TypeDevelop:
		return "Develop"
	case TypeGeneral:
		return "General"
	case TypeInfra:
		return "Infra"
	case TypeMeeting:
		return "Meeting"
	case TypeOutOfOffice:
		return "Out of Office"
	case TypeProblem:
		return "Problem"
	case TypeSupport:
		return "Support"
	default:
		return string(t)
	}
}

// ActivityStatus is the lifecycle state of an activity.
type ActivityStatus string

const (
	StatusActive    ActivityStatus = "ACTIVE"
	StatusPaused    ActivityStatus = "PAUSED"
	StatusCompleted ActivityStatus = "COMPLETED"
)

// ActivityStatuses lists every valid status.
var ActivityStatuses = []ActivityStatus{StatusActive, StatusPaused, StatusCompleted}

// ParseActivityStatus maps stored text to a status. Unknown values fall
// back to COMPLETED.
func ParseActivityStatus(raw string) ActivityStatus {
	for _, s := range ActivityStatuses {
		if string(s) == raw {
			return s
		}
	}
	return StatusCompleted
}

// DisplayName returns the human-readable label for the status.
func (s ActivityStatus) DisplayName() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusPaused:
		return "Paused"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Activity is one tracked work session. ID is 0 until the record has been
// persisted. EndTime is nil while the activity is running.
type Activity struct {
	ID          int64
	StartTime   time.Time
	EndTime     *time.Time
	Type        ActivityType
	Status      ActivityStatus
	Description string
}

// IsRunning reports whether the activity is the in-flight one.
func (a Activity) IsRunning() bool {
	return a.Status == StatusActive
}

// Elapsed returns the activity's span, using reference as the end for a
// still-running activity. Returns 0 for a finished activity without an end.
func (a Activity) Elapsed(reference time.Time) time.Duration {
	end := a.StartTime
	switch {
	case a.EndTime != nil:
		end = *a.EndTime
	case a.IsRunning():
		end = reference
	}
	d := end.Sub(a.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// DurationText renders the activity's span as "2h 5m" or "45m", or "-"
// when no end is known yet.
func (a Activity) DurationText(reference time.Time) string {
	if a.EndTime == nil && !a.IsRunning() {
		return "-"
	}
	total := int(a.Elapsed(reference).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// TotalDurationText sums the spans of activities and renders the total as
// "3h 25m (205 min)" or "45 min" when under an hour. A running activity
// counts up to reference.
func TotalDurationText(activities []Activity, reference time.Time) string {
	var total time.Duration
	for _, a := range activities {
		total += a.Elapsed(reference)
	}
	totalMinutes := int(total.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm (%d min)", hours, minutes, totalMinutes)
	}
	return fmt.Sprintf("%d min", totalMinutes)
}

// Job is a saved description template used to quick-start activities.
// Jobs and activities are independent; starting from a job only copies
// its description.
type Job struct {
	ID          int64
	Description string
}
