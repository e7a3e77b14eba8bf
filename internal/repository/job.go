package repository

import (
	"gorm.io/gorm"

	"timr/internal/models"
	"timr/internal/store"
)

// JobRepository is the persistence surface for saved description
// templates.
type JobRepository interface {
	// Save inserts the job when its id is unset, otherwise updates it.
	Save(j models.Job) (models.Job, error)
	Delete(id int64) error
	// FindAll returns every job ordered by id ascending.
	FindAll() ([]models.Job, error)
	FindByID(id int64) (*models.Job, error)
}

type jobRow struct {
	ID          int64  `gorm:"column:id"`
	Description string `gorm:"column:description"`
}

// SQLiteJobRepository implements JobRepository on the store.
type SQLiteJobRepository struct {
	store *store.Store
}

// NewJobRepository creates a job repository backed by s.
func NewJobRepository(s *store.Store) *SQLiteJobRepository {
	return &SQLiteJobRepository{store: s}
}

func (r *SQLiteJobRepository) Save(j models.Job) (models.Job, error) {
	err := r.store.Sync(func(db *gorm.DB) error {
		if j.ID == 0 {
			res := db.Raw(`INSERT INTO job (description) VALUES (?) RETURNING id`, j.Description).Scan(&j.ID)
			if res.Error != nil {
				return store.ExecError(res.Error)
			}
			return nil
		}
		if err := db.Exec(`UPDATE job SET description = ? WHERE id = ?`, j.Description, j.ID).Error; err != nil {
			return store.ExecError(err)
		}
		return nil
	})
	return j, err
}

func (r *SQLiteJobRepository) Delete(id int64) error {
	return r.store.Sync(func(db *gorm.DB) error {
		if err := db.Exec(`DELETE FROM job WHERE id = ?`, id).Error; err != nil {
			return store.ExecError(err)
		}
		return nil
	})
}

func (r *SQLiteJobRepository) FindAll() ([]models.Job, error) {
	var rows []jobRow
	err := r.store.Sync(func(db *gorm.DB) error {
		if err := db.Raw(`SELECT id, description FROM job ORDER BY id ASC`).Scan(&rows).Error; err != nil {
			return store.QueryError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	jobs := make([]models.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, models.Job(row))
	}
	return jobs, nil
}

func (r *SQLiteJobRepository) FindByID(id int64) (*models.Job, error) {
	var rows []jobRow
	err := r.store.Sync(func(db *gorm.DB) error {
		if err := db.Raw(`SELECT id, description FROM job WHERE id = ? LIMIT 1`, id).Scan(&rows).Error; err != nil {
			return store.QueryError(err)
		}
		return nil
	})
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	job := models.Job(rows[0])
	return &job, nil
}
