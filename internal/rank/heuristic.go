package rank

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"tasktracker/internal/model"
)

// deadlineKeywords mark a task description as time-sensitive. Matched on
// word boundaries so "buy" never matches "by".
var deadlineKeywords = map[string]struct{}{
	"by": {}, "due": {}, "deadline": {}, "today": {}, "tomorrow": {},
	"tonight": {}, "asap": {}, "urgent": {}, "urgently": {}, "eod": {},
	"eow": {}, "monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

// HeuristicRanker is the deterministic, offline fallback. Pending tasks with
// a deadline keyword rank above those without; within each group newer tasks
// rank higher, and creation-time ties keep their input order. Re-ranking an
// already ranked set reproduces the same ordering and scores.
type HeuristicRanker struct{}

var _ Ranker = (*HeuristicRanker)(nil)

// NewHeuristicRanker creates the rule-based ranker.
func NewHeuristicRanker() *HeuristicRanker {
	return &HeuristicRanker{}
}

// Rank orders tasks and assigns positional scores: the top pending task gets
// a score equal to the pending count, the bottom one gets 1. Done tasks
// score 0 and sink. Pure; no network dependency.
func (r *HeuristicRanker) Rank(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	type entry struct {
		task     model.Task
		deadline bool
		pos      int
	}

	pending := make([]entry, 0, len(tasks))
	for i, t := range tasks {
		if !t.Done {
			pending = append(pending, entry{task: t, deadline: hasDeadlineKeyword(t.Description), pos: i})
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].deadline != pending[j].deadline {
			return pending[i].deadline
		}
		if !pending[i].task.CreatedAt.Equal(pending[j].task.CreatedAt) {
			return pending[i].task.CreatedAt.After(pending[j].task.CreatedAt)
		}
		return pending[i].pos < pending[j].pos
	})

	scores := make(map[string]int, len(pending))
	for i, e := range pending {
		scores[e.task.ID] = len(pending) - i
	}
	return finalize(tasks, scores), nil
}

// hasDeadlineKeyword reports whether any whole word of desc is a deadline
// keyword.
func hasDeadlineKeyword(desc string) bool {
	words := strings.FieldsFunc(strings.ToLower(desc), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if _, ok := deadlineKeywords[w]; ok {
			return true
		}
	}
	return false
}
