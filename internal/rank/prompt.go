package rank

import (
	"fmt"
	"strings"

	"tasktracker/internal/model"
)

// taskRankingSystemPrompt is the fixed instruction sent to the model.
const taskRankingSystemPrompt = `You are a productivity AI.

Rank the following tasks from MOST important to LEAST important.

Consider:
- Urgency
- Practical importance
- Likely deadlines
- Real-world impact

Return ONLY a JSON array of task IDs in ranked order.
No explanations.
No markdown.
No extra text.`

// buildRankingPrompt lists one task per line with its id for echoing.
func buildRankingPrompt(tasks []model.Task) string {
	var sb strings.Builder
	sb.WriteString("Tasks:\n")
	for i, t := range tasks {
		sb.WriteString(fmt.Sprintf("%d. ID: %s | Task: %s\n", i+1, t.ID, t.Description))
	}
	return sb.String()
}
