package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tasktracker/internal/model"
	"tasktracker/internal/task/repository"
	pkgLog "tasktracker/pkg/log"
)

type implRepository struct {
	path string
	l    pkgLog.Logger

	mu    sync.Mutex
	tasks []model.Task // insertion order preserved; List sorts a copy
}

// Open loads the task file at path and returns a repository backed by it.
// A missing file yields an empty store. A file that exists but cannot be
// parsed also yields an empty store, with repository.ErrCorruptState wrapped
// in the returned error so the caller can log and continue; the corrupt file
// is overwritten on the next successful mutation.
func Open(path string, l pkgLog.Logger) (repository.TaskRepository, error) {
	r := &implRepository{path: path, l: l}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return r, fmt.Errorf("failed to read task file %s: %w", path, err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return r, fmt.Errorf("%w: %s: %v", repository.ErrCorruptState, path, err)
	}

	r.tasks = tasks
	return r, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.newTask(opt)
	r.tasks = append(r.tasks, t)

	if err := r.save(); err != nil {
		r.tasks = r.tasks[:len(r.tasks)-1]
		return model.Task{}, err
	}
	return t, nil
}

func (r *implRepository) CreateBatch(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev := len(r.tasks)
	created := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		t := r.newTask(opt)
		r.tasks = append(r.tasks, t)
		created = append(created, t)
	}

	if err := r.save(); err != nil {
		r.tasks = r.tasks[:prev]
		return nil, err
	}
	return created, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (r *implRepository) List(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	sortTasks(out)
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, id string, fields repository.UpdateTaskFields) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, t := range r.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Task{}, repository.ErrNotFound
	}

	prev := r.tasks[idx]
	if fields.Description != nil {
		r.tasks[idx].Description = *fields.Description
	}
	if fields.Done != nil {
		r.tasks[idx].Done = *fields.Done
	}
	if fields.Priority != nil {
		r.tasks[idx].Priority = *fields.Priority
	}

	if err := r.save(); err != nil {
		r.tasks[idx] = prev
		return model.Task{}, err
	}
	return r.tasks[idx], nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, t := range r.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return repository.ErrNotFound
	}

	removed := r.tasks[idx]
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)

	if err := r.save(); err != nil {
		r.tasks = append(r.tasks[:idx], append([]model.Task{removed}, r.tasks[idx:]...)...)
		return err
	}
	return nil
}

func (r *implRepository) ReplaceAll(ctx context.Context, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(tasks) != len(r.tasks) {
		return repository.ErrIDMismatch
	}
	existing := make(map[string]bool, len(r.tasks))
	for _, t := range r.tasks {
		existing[t.ID] = true
	}
	for _, t := range tasks {
		if !existing[t.ID] {
			return repository.ErrIDMismatch
		}
	}

	prev := r.tasks
	r.tasks = make([]model.Task, len(tasks))
	copy(r.tasks, tasks)

	if err := r.save(); err != nil {
		r.tasks = prev
		return err
	}
	return nil
}

// newTask builds a fresh task record. Caller must hold r.mu.
func (r *implRepository) newTask(opt repository.CreateTaskOptions) model.Task {
	source := opt.Source
	if !source.Valid() {
		source = model.SourceManual
	}
	return model.Task{
		ID:          uuid.NewString(),
		Description: opt.Description,
		Priority:    opt.Priority,
		Source:      source,
		CreatedAt:   time.Now().UTC(),
	}
}

// save serializes the full collection atomically. Caller must hold r.mu.
func (r *implRepository) save() error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create task file directory: %w", err)
		}
	}

	tasks := r.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	return writeFileAtomic(r.path, data, 0o644)
}

// sortTasks orders tasks for presentation: pending before done, then by
// priority descending. The sort is stable so insertion order breaks ties.
func sortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Done != tasks[j].Done {
			return !tasks[i].Done
		}
		return tasks[i].Priority > tasks[j].Priority
	})
}
