package rank

import (
	"context"

	"tasktracker/internal/model"
)

// Ranker assigns a priority ordering to a task set.
//
// Implementations return the same set of tasks with Priority populated and
// the slice reordered highest-first. ID, Description, and Done are never
// modified. Empty input yields empty output.
type Ranker interface {
	Rank(ctx context.Context, tasks []model.Task) ([]model.Task, error)
}
