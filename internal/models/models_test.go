package models

import (
	"testing"
	"time"
)

func TestParseActivityType(t *testing.T) {
	if got := ParseActivityType("MEETING"); got != TypeMeeting {
		t.Errorf("ParseActivityType(MEETING) = %v", got)
	}
	if got := ParseActivityType("SOMETHING_ELSE"); got != TypeGeneral {
		t.Errorf("unknown type should fall back to GENERAL, got %v", got)
	}
}

func TestParseActivityStatus(t *testing.T) {
	if got := ParseActivityStatus("ACTIVE"); got != StatusActive {
		t.Errorf("ParseActivityStatus(ACTIVE) = %v", got)
	}
	if got := ParseActivityStatus("???"); got != StatusCompleted {
		t.Errorf("unknown status should fall back to COMPLETED, got %v", got)
	}
}

func TestElapsed(t *testing.T) {
	start := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	end := start.Add(90 * time.Minute)
	reference := start.Add(30 * time.Minute)

	t.Run("finished activity uses its end time", func(t *testing.T) {
		a := Activity{StartTime: start, EndTime: &end, Status: StatusCompleted}
		if got := a.Elapsed(reference); got != 90*time.Minute {
			t.Errorf("Elapsed() = %v, want 90m", got)
		}
	})

	t.Run("running activity counts up to reference", func(t *testing.T) {
		a := Activity{StartTime: start, Status: StatusActive}
		if got := a.Elapsed(reference); got != 30*time.Minute {
			t.Errorf("Elapsed() = %v, want 30m", got)
		}
	})

	t.Run("open but not running counts as zero", func(t *testing.T) {
		a := Activity{StartTime: start, Status: StatusCompleted}
		if got := a.Elapsed(reference); got != 0 {
			t.Errorf("Elapsed() = %v, want 0", got)
		}
	})

	t.Run("negative span counts as zero", func(t *testing.T) {
		before := start.Add(-time.Hour)
		a := Activity{StartTime: start, EndTime: &before, Status: StatusCompleted}
		if got := a.Elapsed(reference); got != 0 {
			t.Errorf("Elapsed() = %v, want 0", got)
		}
	})
}

func TestTotalDurationText(t *testing.T) {
	start := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	end1 := start.Add(2 * time.Hour)
	end2 := start.Add(25 * time.Minute)
	activities := []Activity{
		{StartTime: start, EndTime: &end1, Status: StatusCompleted},
		{StartTime: start, EndTime: &end2, Status: StatusCompleted},
	}

	if got := TotalDurationText(activities, start); got != "2h 25m (145 min)" {
		t.Errorf("TotalDurationText() = %q", got)
	}
	if got := TotalDurationText(activities[1:], start); got != "25 min" {
		t.Errorf("TotalDurationText() = %q", got)
	}
}

func TestFilterBounds(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.Local)

	t.Run("today", func(t *testing.T) {
		from, to, ok := FilterToday().Bounds(now)
		if !ok {
			t.Fatal("expected bounded filter")
		}
		if from.Day() != 28 || to.Day() != 28 || from.Hour() != 0 || to.Hour() != 23 {
			t.Errorf("Bounds() = %v..%v", from, to)
		}
	})

	t.Run("yesterday", func(t *testing.T) {
		from, to, ok := FilterYesterday().Bounds(now)
		if !ok {
			t.Fatal("expected bounded filter")
		}
		if from.Day() != 27 || to.Day() != 27 {
			t.Errorf("Bounds() = %v..%v", from, to)
		}
	})

	t.Run("from runs until now", func(t *testing.T) {
		start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.Local)
		from, to, ok := FilterFrom(start).Bounds(now)
		if !ok {
			t.Fatal("expected bounded filter")
		}
		if from.Day() != 1 || from.Hour() != 0 {
			t.Errorf("from = %v", from)
		}
		if !to.Equal(now) {
			t.Errorf("to = %v, want %v", to, now)
		}
	})

	t.Run("range bounds are order independent", func(t *testing.T) {
		a := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
		b := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
		from1, to1, _ := FilterRange(a, b).Bounds(now)
		from2, to2, _ := FilterRange(b, a).Bounds(now)
		if !from1.Equal(from2) || !to1.Equal(to2) {
			t.Errorf("swapped range gave %v..%v vs %v..%v", from1, to1, from2, to2)
		}
	})

	t.Run("all is unbounded", func(t *testing.T) {
		if _, _, ok := FilterAll().Bounds(now); ok {
			t.Error("expected unbounded filter")
		}
		if !FilterAll().IsAll() {
			t.Error("IsAll() = false")
		}
	})
}

func TestFilterTitle(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	cases := map[string]string{
		FilterAll().Title():       "All",
		FilterToday().Title():     "Today",
		FilterYesterday().Title(): "Yesterday",
		FilterOn(date).Title():    "On Aug 28, 2026",
		FilterFrom(date).Title():  "From Aug 28, 2026",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("Title() = %q, want %q", got, want)
		}
	}
}
