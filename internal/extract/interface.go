package extract

import "context"

// Extractor derives discrete task candidates from unstructured text.
//
// Two implementations exist: LLMExtractor (live model call) and
// HeuristicExtractor (deterministic, offline). Callers pick by
// availability: try the model, fall back to the heuristic.
type Extractor interface {
	// Extract returns task description candidates found in rawText.
	// Empty input yields an empty result, never an error.
	Extract(ctx context.Context, rawText string) ([]string, error)
}
