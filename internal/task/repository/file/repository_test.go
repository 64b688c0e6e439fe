package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tasktracker/internal/model"
	"tasktracker/internal/task/repository"
	"tasktracker/internal/task/repository/file"
	pkgLog "tasktracker/pkg/log"
)

func openRepo(t *testing.T, path string) repository.TaskRepository {
	t.Helper()
	repo, err := file.Open(path, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return repo
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := openRepo(t, path)

	first, err := repo.Create(ctx, repository.CreateTaskOptions{Description: "Buy milk", Source: model.SourceManual})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.ID == "" {
		t.Error("expected a generated id")
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if first.Done {
		t.Error("new task must not be done")
	}

	second, err := repo.Create(ctx, repository.CreateTaskOptions{Description: "Call Bob", Source: model.SourceManual})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if second.ID == first.ID {
		t.Error("ids must be unique")
	}

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	// Equal priority: insertion order preserved.
	if tasks[0].ID != first.ID || tasks[1].ID != second.ID {
		t.Errorf("unexpected order: %s, %s", tasks[0].Description, tasks[1].Description)
	}
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "tasks.json"))

	low, _ := repo.Create(ctx, repository.CreateTaskOptions{Description: "low", Priority: 1})
	done, _ := repo.Create(ctx, repository.CreateTaskOptions{Description: "done but high", Priority: 9})
	high, _ := repo.Create(ctx, repository.CreateTaskOptions{Description: "high", Priority: 5})

	doneFlag := true
	if _, err := repo.Update(ctx, done.ID, repository.UpdateTaskFields{Done: &doneFlag}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	tasks, _ := repo.List(ctx)
	if tasks[0].ID != high.ID || tasks[1].ID != low.ID || tasks[2].ID != done.ID {
		t.Errorf("expected high, low, done; got %s, %s, %s",
			tasks[0].Description, tasks[1].Description, tasks[2].Description)
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := openRepo(t, path)

	a, _ := repo.Create(ctx, repository.CreateTaskOptions{Description: "alpha", Source: model.SourceText})
	b, _ := repo.Create(ctx, repository.CreateTaskOptions{Description: "beta", Source: model.SourceTranscript})
	repo.Create(ctx, repository.CreateTaskOptions{Description: "gamma"})

	doneFlag := true
	repo.Update(ctx, a.ID, repository.UpdateTaskFields{Done: &doneFlag})
	repo.Delete(ctx, b.ID)

	before, _ := repo.List(ctx)

	reopened := openRepo(t, path)
	after, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("List after reload failed: %v", err)
	}

	if len(after) != len(before) {
		t.Fatalf("expected %d tasks after reload, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("task %d diverged after reload:\nbefore=%+v\nafter=%+v", i, before[i], after[i])
		}
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "tasks.json"))

	repo.Create(ctx, repository.CreateTaskOptions{Description: "keep me"})

	t.Run("Delete Unknown ID", func(t *testing.T) {
		if err := repo.Delete(ctx, "no-such-id"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		tasks, _ := repo.List(ctx)
		if len(tasks) != 1 {
			t.Errorf("store must be unchanged, got %d tasks", len(tasks))
		}
	})

	t.Run("Update Unknown ID", func(t *testing.T) {
		desc := "x"
		if _, err := repo.Update(ctx, "no-such-id", repository.UpdateTaskFields{Description: &desc}); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Get Unknown ID", func(t *testing.T) {
		if _, err := repo.Get(ctx, "no-such-id"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")

	if err := os.WriteFile(path, []byte("{not valid json"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	repo, err := file.Open(path, pkgLog.NewNop())
	if !errors.Is(err, repository.ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}

	// Degrades to an empty store rather than crashing.
	tasks, listErr := repo.List(ctx)
	if listErr != nil {
		t.Fatalf("List on degraded store failed: %v", listErr)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty store, got %d tasks", len(tasks))
	}

	// Next mutation overwrites the malformed file with valid content.
	if _, err := repo.Create(ctx, repository.CreateTaskOptions{Description: "fresh start"}); err != nil {
		t.Fatalf("Create after corrupt load failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read task file: %v", err)
	}
	if !strings.Contains(string(raw), "fresh start") {
		t.Errorf("task file was not rewritten: %s", raw)
	}

	if _, err := file.Open(path, pkgLog.NewNop()); err != nil {
		t.Errorf("rewritten file must parse cleanly, got %v", err)
	}
}

func TestReplaceAll(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := openRepo(t, path)

	a, _ := repo.Create(ctx, repository.CreateTaskOptions{Description: "a"})
	b, _ := repo.Create(ctx, repository.CreateTaskOptions{Description: "b"})

	t.Run("Reorders And Persists", func(t *testing.T) {
		a.Priority = 1
		b.Priority = 2
		if err := repo.ReplaceAll(ctx, []model.Task{b, a}); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}

		tasks, _ := repo.List(ctx)
		if tasks[0].ID != b.ID {
			t.Errorf("expected b first, got %s", tasks[0].Description)
		}

		reopened := openRepo(t, path)
		tasks, _ = reopened.List(ctx)
		if tasks[0].ID != b.ID || tasks[0].Priority != 2 {
			t.Errorf("reorder did not persist: %+v", tasks[0])
		}
	})

	t.Run("Rejects Foreign IDs", func(t *testing.T) {
		foreign := a
		foreign.ID = "foreign-id"
		if err := repo.ReplaceAll(ctx, []model.Task{b, foreign}); !errors.Is(err, repository.ErrIDMismatch) {
			t.Errorf("expected ErrIDMismatch, got %v", err)
		}
	})

	t.Run("Rejects Wrong Cardinality", func(t *testing.T) {
		if err := repo.ReplaceAll(ctx, []model.Task{a}); !errors.Is(err, repository.ErrIDMismatch) {
			t.Errorf("expected ErrIDMismatch, got %v", err)
		}
	})
}

func TestMissingFileIsEmptyStore(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "does-not-exist.json"))
	tasks, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty store, got %d", len(tasks))
	}
}
