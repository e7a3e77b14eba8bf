// Package repository maps activity and job rows to and from the store.
// It is the only package that issues SQL.
package repository

import (
	"time"

	"gorm.io/gorm"

	"timr/internal/models"
	"timr/internal/store"
	"timr/internal/timeutil"
)

// ActivityRepository is the persistence surface for activities. Result
// sets are ordered by start_time ascending unless noted otherwise.
type ActivityRepository interface {
	// Save inserts the activity and returns it with its assigned id.
	Save(a models.Activity) (models.Activity, error)
	// Update overwrites every mutable field of the row with a's id.
	// It does not check that the row exists.
	Update(a models.Activity) (models.Activity, error)
	// Delete removes the row with the given id. Absent ids are a no-op.
	Delete(id int64) error
	FindByID(id int64) (*models.Activity, error)
	FindAll() ([]models.Activity, error)
	FindByStatus(status models.ActivityStatus) ([]models.Activity, error)
	// FindByDateRange returns activities whose start falls on a calendar
	// day between from's and to's days, inclusive.
	FindByDateRange(from, to time.Time) ([]models.Activity, error)
	// FindByDate returns activities started on date's calendar day.
	FindByDate(date time.Time) ([]models.Activity, error)
	// FindLatestActivity returns the activity on date's day with the
	// greatest end time, or nil when the day is empty.
	FindLatestActivity(date time.Time) (*models.Activity, error)
	// UpdateStatus moves every row in status current to newStatus and,
	// when endTime is non-nil, stamps their end_time.
	UpdateStatus(current, newStatus models.ActivityStatus, endTime *time.Time) error
}

const activitySelect = `SELECT id, start_time, end_time, activity_type, status, description FROM activity`

// activityRow mirrors the activity table. Timestamps stay text until
// mapping, where unparsable rows are dropped.
type activityRow struct {
	ID           int64   `gorm:"column:id"`
	StartTime    string  `gorm:"column:start_time"`
	EndTime      *string `gorm:"column:end_time"`
	ActivityType string  `gorm:"column:activity_type"`
	Status       string  `gorm:"column:status"`
	Description  string  `gorm:"column:description"`
}

// SQLiteActivityRepository implements ActivityRepository on the store.
type SQLiteActivityRepository struct {
	store *store.Store
}

// NewActivityRepository creates an activity repository backed by s.
func NewActivityRepository(s *store.Store) *SQLiteActivityRepository {
	return &SQLiteActivityRepository{store: s}
}

func (r *SQLiteActivityRepository) Save(a models.Activity) (models.Activity, error) {
	const sql = `INSERT INTO activity (start_time, end_time, activity_type, status, description)
VALUES (?, ?, ?, ?, ?) RETURNING id`
	err := r.store.Sync(func(db *gorm.DB) error {
		res := db.Raw(sql,
			timeutil.FormatISO(a.StartTime), optionalTime(a.EndTime),
			string(a.Type), string(a.Status), a.Description).Scan(&a.ID)
		if res.Error != nil {
			return store.ExecError(res.Error)
		}
		return nil
	})
	return a, err
}

func (r *SQLiteActivityRepository) Update(a models.Activity) (models.Activity, error) {
	const sql = `UPDATE activity
SET start_time = ?, end_time = ?, activity_type = ?, status = ?, description = ?
WHERE id = ?`
	err := r.store.Sync(func(db *gorm.DB) error {
		res := db.Exec(sql,
			timeutil.FormatISO(a.StartTime), optionalTime(a.EndTime),
			string(a.Type), string(a.Status), a.Description, a.ID)
		if res.Error != nil {
			return store.ExecError(res.Error)
		}
		return nil
	})
	return a, err
}

func (r *SQLiteActivityRepository) Delete(id int64) error {
	return r.store.Sync(func(db *gorm.DB) error {
		if err := db.Exec(`DELETE FROM activity WHERE id = ?`, id).Error; err != nil {
			return store.ExecError(err)
		}
		return nil
	})
}

func (r *SQLiteActivityRepository) FindByID(id int64) (*models.Activity, error) {
	return r.fetchSingle(activitySelect+` WHERE id = ? LIMIT 1`, id)
}

func (r *SQLiteActivityRepository) FindAll() ([]models.Activity, error) {
	return r.fetchMultiple(activitySelect + ` ORDER BY start_time ASC`)
}

func (r *SQLiteActivityRepository) FindByStatus(status models.ActivityStatus) ([]models.Activity, error) {
	return r.fetchMultiple(activitySelect+` WHERE status = ? ORDER BY start_time ASC`, string(status))
}

func (r *SQLiteActivityRepository) FindByDateRange(from, to time.Time) ([]models.Activity, error) {
	return r.fetchMultiple(
		activitySelect+` WHERE DATE(start_time) >= DATE(?) AND DATE(start_time) <= DATE(?) ORDER BY start_time ASC`,
		timeutil.FormatISO(from), timeutil.FormatISO(to))
}

func (r *SQLiteActivityRepository) FindByDate(date time.Time) ([]models.Activity, error) {
	return r.fetchMultiple(
		activitySelect+` WHERE DATE(start_time) = DATE(?) ORDER BY start_time ASC`,
		timeutil.FormatISO(date))
}

func (r *SQLiteActivityRepository) FindLatestActivity(date time.Time) (*models.Activity, error) {
	// DESC ordering puts NULL end times last, so an open row is only
	// the "latest" when nothing on the day has finished.
	return r.fetchSingle(
		activitySelect+` WHERE DATE(start_time) = DATE(?) ORDER BY end_time DESC LIMIT 1`,
		timeutil.FormatISO(date))
}

func (r *SQLiteActivityRepository) UpdateStatus(current, newStatus models.ActivityStatus, endTime *time.Time) error {
	return r.store.Sync(func(db *gorm.DB) error {
		res := db.Exec(`UPDATE activity SET status = ?, end_time = ? WHERE status = ?`,
			string(newStatus), optionalTime(endTime), string(current))
		if res.Error != nil {
			return store.ExecError(res.Error)
		}
		return nil
	})
}

func (r *SQLiteActivityRepository) fetchMultiple(sql string, args ...any) ([]models.Activity, error) {
	var rows []activityRow
	err := r.store.Sync(func(db *gorm.DB) error {
		if err := db.Raw(sql, args...).Scan(&rows).Error; err != nil {
			return store.QueryError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	results := make([]models.Activity, 0, len(rows))
	for _, row := range rows {
		if a, ok := mapActivity(row); ok {
			results = append(results, a)
		}
	}
	return results, nil
}

func (r *SQLiteActivityRepository) fetchSingle(sql string, args ...any) (*models.Activity, error) {
	activities, err := r.fetchMultiple(sql, args...)
	if err != nil || len(activities) == 0 {
		return nil, err
	}
	return &activities[0], nil
}

// mapActivity converts a raw row to the entity. Rows whose start time
// does not parse are dropped; unknown type or status text falls back to
// GENERAL and COMPLETED.
func mapActivity(row activityRow) (models.Activity, bool) {
	start, err := timeutil.ParseISO(row.StartTime)
	if err != nil {
		return models.Activity{}, false
	}
	var end *time.Time
	if row.EndTime != nil {
		if parsed, err := timeutil.ParseISO(*row.EndTime); err == nil {
			end = &parsed
		}
	}
	return models.Activity{
		ID:          row.ID,
		StartTime:   start,
		EndTime:     end,
		Type:        models.ParseActivityType(row.ActivityType),
		Status:      models.ParseActivityStatus(row.Status),
		Description: row.Description,
	}, true
}

// optionalTime renders a nullable timestamp for binding.
func optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return timeutil.FormatISO(*t)
}
