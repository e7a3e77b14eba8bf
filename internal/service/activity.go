// Package service holds the activity lifecycle state machine. Every
// write goes through here; nothing else touches the repositories.
package service

import (
	"strings"
	"time"

	"timr/internal/config"
	"timr/internal/models"
	"timr/internal/repository"
	"timr/internal/timeutil"
)

// ActivityService drives the activity lifecycle and enforces that at
// most one activity is active at any moment.
type ActivityService struct {
	repo repository.ActivityRepository
	cfg  *config.Config
}

// NewActivityService creates a service over repo with policy read from cfg.
func NewActivityService(repo repository.ActivityRepository, cfg *config.Config) *ActivityService {
	return &ActivityService{repo: repo, cfg: cfg}
}

// Start begins a new active activity at startTime. Any activity still
// active is force-completed with its end set to startTime first, so the
// single-active invariant holds even when a stop was missed.
func (s *ActivityService) Start(activityType models.ActivityType, description string, startTime time.Time) (models.Activity, error) {
	if err := s.repo.UpdateStatus(models.StatusActive, models.StatusCompleted, &startTime); err != nil {
		return models.Activity{}, &Error{Op: "start activity", Err: err}
	}
	activity := models.Activity{
		StartTime:   startTime,
		Type:        activityType,
		Status:      models.StatusActive,
		Description: strings.TrimSpace(description),
	}
	activity, err := s.repo.Save(activity)
	if err != nil {
		return models.Activity{}, &Error{Op: "start activity", Err: err}
	}
	return activity, nil
}

// Stop completes the active activity. The end time is reference rounded
// up to the configured increment when one is set. Returns nil with no
// error when nothing is active.
func (s *ActivityService) Stop(reference time.Time) (*models.Activity, error) {
	active, err := s.repo.FindByStatus(models.StatusActive)
	if err != nil {
		return nil, &Error{Op: "stop activity", Err: err}
	}
	if len(active) == 0 {
		return nil, nil
	}
	activity := active[0]
	endTime := reference
	if rounding := s.cfg.RoundingMinutes; rounding > 1 {
		endTime = timeutil.RoundUp(reference, rounding)
	}
	activity.EndTime = &endTime
	activity.Status = models.StatusCompleted
	activity, err = s.repo.Update(activity)
	if err != nil {
		return nil, &Error{Op: "stop activity", Err: err}
	}
	return &activity, nil
}

// Restart stops whatever is running and starts a fresh activity cloning
// the source's type and description, beginning now. Returns nil when the
// source id does not exist.
func (s *ActivityService) Restart(activityID int64, now time.Time) (*models.Activity, error) {
	source, err := s.repo.FindByID(activityID)
	if err != nil {
		return nil, &Error{Op: "restart activity", Err: err}
	}
	if source == nil {
		return nil, nil
	}
	if _, err := s.Stop(now); err != nil {
		return nil, err
	}
	activity, err := s.Start(source.Type, source.Description, now)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// AddCompleted records a finished activity from a draft. A draft that
// declines to pick an end time gets start plus the configured default
// duration.
func (s *ActivityService) AddCompleted(state models.EditorState) (models.Activity, error) {
	endTime := state.End
	if !state.IncludeEnd {
		endTime = state.Start.Add(s.cfg.DefaultDuration())
	}
	activity := models.Activity{
		StartTime:   state.Start,
		EndTime:     &endTime,
		Type:        state.Type,
		Status:      models.StatusCompleted,
		Description: strings.TrimSpace(state.Description),
	}
	activity, err := s.repo.Save(activity)
	if err != nil {
		return models.Activity{}, &Error{Op: "add activity", Err: err}
	}
	return activity, nil
}

// Update overwrites activity's fields from the draft and persists it.
// Declining the end clears any stored end time.
func (s *ActivityService) Update(activity models.Activity, state models.EditorState) (models.Activity, error) {
	activity.StartTime = state.Start
	if state.IncludeEnd {
		end := state.End
		activity.EndTime = &end
	} else {
		activity.EndTime = nil
	}
	activity.Type = state.Type
	activity.Status = state.Status
	activity.Description = strings.TrimSpace(state.Description)
	activity, err := s.repo.Update(activity)
	if err != nil {
		return models.Activity{}, &Error{Op: "update activity", Err: err}
	}
	return activity, nil
}

// Copy records a new completed activity seeded from an existing one's
// draft. The result always gets a fresh id.
func (s *ActivityService) Copy(state models.EditorState) (models.Activity, error) {
	end := state.End
	activity := models.Activity{
		StartTime:   state.Start,
		EndTime:     &end,
		Type:        state.Type,
		Status:      models.StatusCompleted,
		Description: strings.TrimSpace(state.Description),
	}
	activity, err := s.repo.Save(activity)
	if err != nil {
		return models.Activity{}, &Error{Op: "copy activity", Err: err}
	}
	return activity, nil
}

// Delete removes the activity with the given id.
func (s *ActivityService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return &Error{Op: "delete activity", Err: err}
	}
	return nil
}

// Activities returns the activities selected by filter, ordered by
// start time.
func (s *ActivityService) Activities(filter models.DateFilter, now time.Time) ([]models.Activity, error) {
	if filter.IsAll() {
		activities, err := s.repo.FindAll()
		if err != nil {
			return nil, &Error{Op: "list activities", Err: err}
		}
		return activities, nil
	}
	from, to, _ := filter.Bounds(now)
	activities, err := s.repo.FindByDateRange(from, to)
	if err != nil {
		return nil, &Error{Op: "list activities", Err: err}
	}
	return activities, nil
}

// Activity looks one activity up by id, returning nil when absent.
func (s *ActivityService) Activity(id int64) (*models.Activity, error) {
	activity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, &Error{Op: "find activity", Err: err}
	}
	return activity, nil
}

// LatestActivity returns the activity with the greatest end time on
// date's calendar day, or nil for an empty day.
func (s *ActivityService) LatestActivity(date time.Time) (*models.Activity, error) {
	activity, err := s.repo.FindLatestActivity(date)
	if err != nil {
		return nil, &Error{Op: "find latest activity", Err: err}
	}
	return activity, nil
}

// ActiveActivities returns whatever is currently active. Under the
// invariant that is at most one activity.
func (s *ActivityService) ActiveActivities() ([]models.Activity, error) {
	activities, err := s.repo.FindByStatus(models.StatusActive)
	if err != nil {
		return nil, &Error{Op: "find active activities", Err: err}
	}
	return activities, nil
}

// Durations sums elapsed time per activity type over the day window
// from..to. A still-running activity counts up to reference. Types with
// no positive elapsed time are absent from the result.
func (s *ActivityService) Durations(from, to, reference time.Time) (map[models.ActivityType]time.Duration, error) {
	activities, err := s.repo.FindByDateRange(from, to)
	if err != nil {
		return nil, &Error{Op: "aggregate durations", Err: err}
	}
	totals := make(map[models.ActivityType]time.Duration)
	for _, activity := range activities {
		elapsed := activity.Elapsed(reference)
		if elapsed <= 0 {
			continue
		}
		totals[activity.Type] += elapsed
	}
	return totals, nil
}

// DefaultEditorState builds the draft an entry form starts from: the
// configured start-of-day anchor, default duration and default type.
func DefaultEditorState(cfg *config.Config, now time.Time) models.EditorState {
	start := cfg.DefaultStartDate(now)
	return models.EditorState{
		Type:       cfg.ActivityType(),
		Start:      start,
		End:        start.Add(cfg.DefaultDuration()),
		IncludeEnd: true,
		Status:     models.StatusCompleted,
	}
}
