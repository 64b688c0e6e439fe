package usecase

import (
	"context"
	"fmt"
	"strings"

	"tasktracker/internal/model"
	"tasktracker/internal/task"
	"tasktracker/internal/task/repository"
)

// Add creates a single task from a manual description. Manual entries are
// stored as typed; ranking only happens when the user asks for it.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.AddOutput, error) {
	desc := strings.TrimSpace(input.Description)
	if desc == "" {
		return task.AddOutput{}, task.ErrEmptyInput
	}

	created, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
		Description: desc,
		Source:      model.SourceManual,
	})
	if err != nil {
		return task.AddOutput{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "Add: created task id=%s", created.ID)
	return task.AddOutput{Task: created}, nil
}

// List returns every stored task in priority order.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	tasks, err := uc.repo.List(ctx)
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}
