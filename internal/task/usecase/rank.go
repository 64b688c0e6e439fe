package usecase

import (
	"context"
	"fmt"

	"tasktracker/internal/model"
	"tasktracker/internal/task"
)

// Rank re-prioritizes every pending task and persists the new order.
func (uc *implUseCase) Rank(ctx context.Context) (task.RankOutput, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return task.RankOutput{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	if len(all) == 0 {
		return task.RankOutput{Tasks: []model.Task{}, Count: 0, Engine: task.EngineHeuristic}, nil
	}

	ranked, engine, err := uc.rankAndPersist(ctx, all)
	if err != nil {
		return task.RankOutput{}, err
	}

	uc.l.Infof(ctx, "Rank: re-prioritized %d tasks engine=%s", len(ranked), engine)
	return task.RankOutput{
		Tasks:  ranked,
		Count:  len(ranked),
		Engine: engine,
	}, nil
}
