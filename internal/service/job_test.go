package service

import (
	"testing"

	"timr/internal/repository"
	"timr/internal/store"
)

func setupJobService(t *testing.T) *JobService {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewJobService(repository.NewJobRepository(s))
}

func TestJobLifecycle(t *testing.T) {
	svc := setupJobService(t)

	job, err := svc.AddJob("  Incident review  ")
	if err != nil {
		t.Fatalf("AddJob() error = %v", err)
	}
	if job.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if job.Description != "Incident review" {
		t.Errorf("description not trimmed: %q", job.Description)
	}

	job.Description = "Weekly incident review"
	if _, err := svc.UpdateJob(job); err != nil {
		t.Fatalf("UpdateJob() error = %v", err)
	}

	found, err := svc.Job(job.ID)
	if err != nil {
		t.Fatalf("Job() error = %v", err)
	}
	if found == nil || found.Description != "Weekly incident review" {
		t.Errorf("Job() = %v", found)
	}

	list, err := svc.ListJobs()
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 job, got %d", len(list))
	}

	if err := svc.DeleteJob(job.ID); err != nil {
		t.Fatalf("DeleteJob() error = %v", err)
	}
	if found, _ := svc.Job(job.ID); found != nil {
		t.Error("expected job gone")
	}
}
