package service

import (
	"strings"

	"timr/internal/models"
	"timr/internal/repository"
)

// JobService manages the saved description templates.
type JobService struct {
	repo repository.JobRepository
}

// NewJobService creates a job service over repo.
func NewJobService(repo repository.JobRepository) *JobService {
	return &JobService{repo: repo}
}

// AddJob saves a new template with a trimmed description.
func (s *JobService) AddJob(description string) (models.Job, error) {
	job, err := s.repo.Save(models.Job{Description: strings.TrimSpace(description)})
	if err != nil {
		return models.Job{}, &Error{Op: "add job", Err: err}
	}
	return job, nil
}

// UpdateJob overwrites an existing template's description.
func (s *JobService) UpdateJob(job models.Job) (models.Job, error) {
	job.Description = strings.TrimSpace(job.Description)
	job, err := s.repo.Save(job)
	if err != nil {
		return models.Job{}, &Error{Op: "update job", Err: err}
	}
	return job, nil
}

// DeleteJob removes a template.
func (s *JobService) DeleteJob(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return &Error{Op: "delete job", Err: err}
	}
	return nil
}

// ListJobs returns every template ordered by id.
func (s *JobService) ListJobs() ([]models.Job, error) {
	jobs, err := s.repo.FindAll()
	if err != nil {
		return nil, &Error{Op: "list jobs", Err: err}
	}
	return jobs, nil
}

// Job looks a template up by id, returning nil when absent.
func (s *JobService) Job(id int64) (*models.Job, error) {
	job, err := s.repo.FindByID(id)
	if err != nil {
		return nil, &Error{Op: "find job", Err: err}
	}
	return job, nil
}
