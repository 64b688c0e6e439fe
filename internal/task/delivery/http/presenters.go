package http

import (
	"tasktracker/internal/model"
	"tasktracker/internal/task"
	"tasktracker/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description" binding:"required,min=1,max=1000"`
}

func (r createReq) toInput() task.AddInput {
	return task.AddInput{Description: r.Description}
}

type updateReq struct {
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Done        *bool   `json:"done"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		Description: r.Description,
		Done:        r.Done,
	}
}

type extractReq struct {
	Text string `json:"text" binding:"required"`
}

func (r extractReq) toInput() task.ExtractInput {
	return task.ExtractInput{RawText: r.Text}
}

type transcribeReq struct {
	FilePath string `json:"file_path" binding:"required"`
}

func (r transcribeReq) toInput() task.TranscribeInput {
	return task.TranscribeInput{FilePath: r.FilePath}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Priority    int               `json:"priority"`
	Source      string            `json:"source"`
	CreatedAt   response.DateTime `json:"created_at"`
	Done        bool              `json:"done"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Description: t.Description,
		Priority:    t.Priority,
		Source:      string(t.Source),
		CreatedAt:   response.DateTime(t.CreatedAt),
		Done:        t.Done,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.AddOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{Tasks: newTaskResps(out.Tasks), Count: out.Count}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type extractResp struct {
	Tasks  []taskResp `json:"tasks"`
	Count  int        `json:"count"`
	Engine string     `json:"engine"`
}

func (h *handler) newExtractResp(out task.ExtractOutput) extractResp {
	return extractResp{
		Tasks:  newTaskResps(out.Tasks),
		Count:  out.Count,
		Engine: out.Engine,
	}
}

type transcribeResp struct {
	Transcript string     `json:"transcript"`
	Tasks      []taskResp `json:"tasks"`
	Count      int        `json:"count"`
	Engine     string     `json:"engine"`
}

func (h *handler) newTranscribeResp(out task.TranscribeOutput) transcribeResp {
	return transcribeResp{
		Transcript: out.Transcript,
		Tasks:      newTaskResps(out.Tasks),
		Count:      out.Count,
		Engine:     out.Engine,
	}
}

type rankResp struct {
	Tasks  []taskResp `json:"tasks"`
	Count  int        `json:"count"`
	Engine string     `json:"engine"`
}

func (h *handler) newRankResp(out task.RankOutput) rankResp {
	return rankResp{
		Tasks:  newTaskResps(out.Tasks),
		Count:  out.Count,
		Engine: out.Engine,
	}
}
