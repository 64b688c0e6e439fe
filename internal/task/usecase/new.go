package usecase

import (
	"tasktracker/internal/extract"
	"tasktracker/internal/rank"
	"tasktracker/internal/task/repository"
	"tasktracker/internal/transcribe"
	pkgLog "tasktracker/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TaskRepository

	// Model-backed engines; nil when no provider is configured, in which
	// case the fallbacks are used directly.
	llmExtractor extract.Extractor
	llmRanker    rank.Ranker

	// Deterministic fallbacks, always present.
	fallbackExtractor extract.Extractor
	fallbackRanker    rank.Ranker

	transcriber transcribe.Transcriber
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	llmExtractor extract.Extractor,
	llmRanker rank.Ranker,
	fallbackExtractor extract.Extractor,
	fallbackRanker rank.Ranker,
	transcriber transcribe.Transcriber,
) *implUseCase {
	return &implUseCase{
		l:                 l,
		repo:              repo,
		llmExtractor:      llmExtractor,
		llmRanker:         llmRanker,
		fallbackExtractor: fallbackExtractor,
		fallbackRanker:    fallbackRanker,
		transcriber:       transcriber,
	}
}
