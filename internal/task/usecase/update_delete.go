package usecase

import (
	"context"
	"strings"

	"tasktracker/internal/task"
	"tasktracker/internal/task/repository"
)

// Update mutates a task's description and/or done flag.
func (uc *implUseCase) Update(ctx context.Context, id string, input task.UpdateInput) (task.UpdateOutput, error) {
	fields := repository.UpdateTaskFields{Done: input.Done}

	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		if desc == "" {
			return task.UpdateOutput{}, task.ErrEmptyInput
		}
		fields.Description = &desc
	}

	updated, err := uc.repo.Update(ctx, id, fields)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	uc.l.Infof(ctx, "Update: task id=%s", id)
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a task permanently.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.l.Infof(ctx, "Delete: task id=%s", id)
	return nil
}
