package usecase

import (
	"context"
	"fmt"

	"tasktracker/internal/model"
	"tasktracker/internal/task"
	"tasktracker/internal/task/repository"
)

// extractCandidates runs the model-backed extractor first and switches to
// the deterministic fallback when the model is unavailable or returns
// garbage. The returned engine names which path produced the result.
func (uc *implUseCase) extractCandidates(ctx context.Context, rawText string) ([]string, string, error) {
	if uc.llmExtractor != nil {
		candidates, err := uc.llmExtractor.Extract(ctx, rawText)
		if err == nil {
			return candidates, task.EngineLLM, nil
		}
		uc.l.Warnf(ctx, "extract: model path failed, falling back to heuristic: %v", err)
	}

	candidates, err := uc.fallbackExtractor.Extract(ctx, rawText)
	if err != nil {
		return nil, "", fmt.Errorf("fallback extraction failed: %w", err)
	}
	return candidates, task.EngineHeuristic, nil
}

// rankAndPersist re-prioritizes the given tasks and swaps the stored set
// for the ranked one. Same model-first, heuristic-fallback policy as
// extraction.
func (uc *implUseCase) rankAndPersist(ctx context.Context, tasks []model.Task) ([]model.Task, string, error) {
	engine := task.EngineHeuristic
	var ranked []model.Task
	var err error

	if uc.llmRanker != nil {
		ranked, err = uc.llmRanker.Rank(ctx, tasks)
		if err == nil {
			engine = task.EngineLLM
		} else {
			uc.l.Warnf(ctx, "rank: model path failed, falling back to heuristic: %v", err)
		}
	}
	if engine == task.EngineHeuristic {
		ranked, err = uc.fallbackRanker.Rank(ctx, tasks)
		if err != nil {
			return nil, "", fmt.Errorf("fallback ranking failed: %w", err)
		}
	}

	if err := uc.repo.ReplaceAll(ctx, ranked); err != nil {
		return nil, "", fmt.Errorf("failed to persist ranking: %w", err)
	}
	return ranked, engine, nil
}

// ingestText extracts tasks from rawText, stores them with the given
// source, and re-ranks the whole collection. Returns the newly created
// tasks with their post-ranking priorities.
func (uc *implUseCase) ingestText(ctx context.Context, rawText string, source model.TaskSource) ([]model.Task, string, error) {
	candidates, engine, err := uc.extractCandidates(ctx, rawText)
	if err != nil {
		return nil, "", err
	}
	if len(candidates) == 0 {
		return nil, "", task.ErrNoTasksExtracted
	}

	opts := make([]repository.CreateTaskOptions, 0, len(candidates))
	for _, c := range candidates {
		opts = append(opts, repository.CreateTaskOptions{
			Description: c,
			Source:      source,
		})
	}

	created, err := uc.repo.CreateBatch(ctx, opts)
	if err != nil {
		return nil, "", fmt.Errorf("failed to store extracted tasks: %w", err)
	}

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load tasks for ranking: %w", err)
	}

	ranked, rankEngine, err := uc.rankAndPersist(ctx, all)
	if err != nil {
		return nil, "", err
	}
	uc.l.Infof(ctx, "ingest: stored %d tasks source=%s extract=%s rank=%s", len(created), source, engine, rankEngine)

	// Pick the created tasks back out of the ranked set so the caller
	// sees their final priorities.
	createdIDs := make(map[string]struct{}, len(created))
	for _, t := range created {
		createdIDs[t.ID] = struct{}{}
	}
	out := make([]model.Task, 0, len(created))
	for _, t := range ranked {
		if _, ok := createdIDs[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out, engine, nil
}
