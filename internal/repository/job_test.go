package repository

import (
	"testing"

	"timr/internal/models"
)

func TestJobSaveInsertsAndUpdates(t *testing.T) {
	repo := NewJobRepository(setupStore(t))

	saved, err := repo.Save(models.Job{Description: "Standup notes"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected assigned id")
	}

	saved.Description = "Standup"
	updated, err := repo.Save(saved)
	if err != nil {
		t.Fatalf("Save() update error = %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("update changed id: %d -> %d", saved.ID, updated.ID)
	}

	found, err := repo.FindByID(saved.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found == nil || found.Description != "Standup" {
		t.Errorf("FindByID() = %v", found)
	}
}

func TestJobFindAllOrdersByID(t *testing.T) {
	repo := NewJobRepository(setupStore(t))

	for _, desc := range []string{"one", "two", "three"} {
		if _, err := repo.Save(models.Job{Description: desc}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	jobs, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	for i := 1; i < len(jobs); i++ {
		if jobs[i].ID <= jobs[i-1].ID {
			t.Errorf("not ordered by id: %d after %d", jobs[i].ID, jobs[i-1].ID)
		}
	}
}

func TestJobDelete(t *testing.T) {
	repo := NewJobRepository(setupStore(t))

	saved, err := repo.Save(models.Job{Description: "gone soon"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := repo.Delete(saved.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if found, _ := repo.FindByID(saved.ID); found != nil {
		t.Error("expected job gone")
	}
	if err := repo.Delete(saved.ID); err != nil {
		t.Errorf("repeat Delete() error = %v", err)
	}
}

func TestJobFindByIDMissing(t *testing.T) {
	repo := NewJobRepository(setupStore(t))
	found, err := repo.FindByID(404)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found != nil {
		t.Errorf("expected nil, got %v", found)
	}
}
