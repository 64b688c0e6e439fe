package rank

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"tasktracker/internal/extract"
	"tasktracker/internal/model"
	"tasktracker/pkg/llmprovider"
	pkgLog "tasktracker/pkg/log"
)

// LLMRanker ranks tasks via a generative model.
//
// Only pending tasks are sent to the model; completed tasks keep a zero
// priority and sink to the bottom of the ordering.
type LLMRanker struct {
	llm extract.Generator
	l   pkgLog.Logger
}

var _ Ranker = (*LLMRanker)(nil)

// NewLLMRanker creates a model-backed ranker.
func NewLLMRanker(llm extract.Generator, l pkgLog.Logger) *LLMRanker {
	return &LLMRanker{llm: llm, l: l}
}

// Rank asks the model for a ranked list of task IDs and converts positions
// into scores: the task ranked first gets the highest score, the last gets 1.
// IDs the model omits or invents score 0. A model failure or a malformed
// response is returned as an error so the caller can switch to the
// deterministic fallback.
func (r *LLMRanker) Rank(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	pending := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Done {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return finalize(tasks, nil), nil
	}

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: taskRankingSystemPrompt,
		Prompt:            buildRankingPrompt(pending),
		Temperature:       0.2,
		MaxTokens:         2048,
	})
	if err != nil {
		return nil, fmt.Errorf("ranking model call failed: %w", err)
	}

	r.l.Debugf(ctx, "rank: raw model response: %s", resp.Text)

	cleaned := extract.SanitizeJSONResponse(resp.Text)

	var rankedIDs []string
	if err := json.Unmarshal([]byte(cleaned), &rankedIDs); err != nil {
		r.l.Warnf(ctx, "rank: failed to parse model response. Raw=%q Cleaned=%q", resp.Text, cleaned)
		return nil, fmt.Errorf("failed to parse ranking response: %w", err)
	}

	scores := make(map[string]int, len(rankedIDs))
	for i, id := range rankedIDs {
		if _, dup := scores[id]; dup {
			continue
		}
		scores[id] = len(rankedIDs) - i
	}
	return finalize(tasks, scores), nil
}

// finalize copies tasks, applies scores (missing IDs and done tasks score 0)
// and orders the result pending-first, highest score first. The sort is
// stable so equal scores keep their input order.
func finalize(tasks []model.Task, scores map[string]int) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].Done {
			out[i].Priority = 0
			continue
		}
		out[i].Priority = scores[out[i].ID]
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Done != out[j].Done {
			return !out[i].Done
		}
		return out[i].Priority > out[j].Priority
	})
	return out
}
