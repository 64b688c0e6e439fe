package repository

import (
	"context"

	"tasktracker/internal/model"
)

// TaskRepository is the interface for task persistence.
// Every mutation is flushed to durable storage before returning.
type TaskRepository interface {
	// Create assigns a fresh ID and CreatedAt, appends the task, and persists.
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// CreateBatch creates one task per option, in order, persisting once at the end.
	CreateBatch(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)

	// Get returns the task with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (model.Task, error)

	// List returns all tasks ordered by priority (highest first); done tasks sink.
	List(ctx context.Context) ([]model.Task, error)

	// Update applies the set fields to the task with the given id, or ErrNotFound.
	Update(ctx context.Context, id string, fields UpdateTaskFields) (model.Task, error)

	// Delete removes the task with the given id, or ErrNotFound.
	Delete(ctx context.Context, id string) error

	// ReplaceAll swaps the whole collection (used after ranking) and persists.
	// Tasks must carry the same set of IDs already in the store.
	ReplaceAll(ctx context.Context, tasks []model.Task) error
}
