package usecase

import (
	"context"
	"strings"

	"tasktracker/internal/model"
	"tasktracker/internal/task"
)

// ExtractFromText derives tasks from free text, stores them, and re-ranks
// the whole set.
func (uc *implUseCase) ExtractFromText(ctx context.Context, input task.ExtractInput) (task.ExtractOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.ExtractOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "ExtractFromText: input_length=%d", len(input.RawText))

	created, engine, err := uc.ingestText(ctx, input.RawText, model.SourceText)
	if err != nil {
		return task.ExtractOutput{}, err
	}

	return task.ExtractOutput{
		Tasks:  created,
		Count:  len(created),
		Engine: engine,
	}, nil
}
