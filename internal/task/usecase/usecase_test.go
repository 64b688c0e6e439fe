package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"tasktracker/internal/extract"
	"tasktracker/internal/model"
	"tasktracker/internal/rank"
	"tasktracker/internal/task"
	"tasktracker/internal/task/repository"
	"tasktracker/internal/task/repository/file"
	"tasktracker/internal/task/usecase"
	pkgLog "tasktracker/pkg/log"
)

type stubExtractor struct {
	out   []string
	err   error
	calls int
}

func (s *stubExtractor) Extract(ctx context.Context, rawText string) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

type failingRanker struct{ calls int }

func (r *failingRanker) Rank(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	r.calls++
	return nil, errors.New("model unreachable")
}

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) TranscribeFile(ctx context.Context, path string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func newRepo(t *testing.T) repository.TaskRepository {
	t.Helper()
	repo, err := file.Open(filepath.Join(t.TempDir(), "tasks.json"), pkgLog.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return repo
}

// newUseCase wires the use case with deterministic fallbacks only, the
// configuration a box with no model providers runs in.
func newUseCase(t *testing.T, repo repository.TaskRepository) task.UseCase {
	t.Helper()
	return usecase.New(
		pkgLog.NewNop(),
		repo,
		nil,
		nil,
		extract.NewHeuristicExtractor(),
		rank.NewHeuristicRanker(),
		&stubTranscriber{},
	)
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	uc := newUseCase(t, repo)

	t.Run("Creates Manual Task", func(t *testing.T) {
		out, err := uc.Add(ctx, task.AddInput{Description: "  Buy milk  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Description != "Buy milk" {
			t.Errorf("description not trimmed: %q", out.Task.Description)
		}
		if out.Task.Source != model.SourceManual {
			t.Errorf("expected manual source, got %s", out.Task.Source)
		}
		if out.Task.ID == "" || out.Task.CreatedAt.IsZero() {
			t.Errorf("missing generated fields: %+v", out.Task)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if _, err := uc.Add(ctx, task.AddInput{Description: "   "}); !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	uc := newUseCase(t, repo)

	added, err := uc.Add(ctx, task.AddInput{Description: "Buy milk"})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Mark Done", func(t *testing.T) {
		done := true
		out, err := uc.Update(ctx, added.Task.ID, task.UpdateInput{Done: &done})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Done {
			t.Error("task should be done")
		}
	})

	t.Run("Blank Description Rejected", func(t *testing.T) {
		blank := "  "
		if _, err := uc.Update(ctx, added.Task.ID, task.UpdateInput{Description: &blank}); !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Unknown ID", func(t *testing.T) {
		done := true
		if _, err := uc.Update(ctx, "nope", task.UpdateInput{Done: &done}); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := uc.Delete(ctx, added.Task.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Delete(ctx, added.Task.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestExtractFromText(t *testing.T) {
	ctx := context.Background()

	t.Run("Model Path", func(t *testing.T) {
		repo := newRepo(t)
		llmEx := &stubExtractor{out: []string{"Finish report", "Email client"}}
		uc := usecase.New(
			pkgLog.NewNop(), repo,
			llmEx, rank.NewHeuristicRanker(),
			extract.NewHeuristicExtractor(), rank.NewHeuristicRanker(),
			&stubTranscriber{},
		)

		out, err := uc.ExtractFromText(ctx, task.ExtractInput{RawText: "finish the report and email the client"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Engine != task.EngineLLM {
			t.Errorf("expected llm engine, got %s", out.Engine)
		}
		if out.Count != 2 {
			t.Fatalf("expected 2 tasks, got %d", out.Count)
		}
		for _, tk := range out.Tasks {
			if tk.Source != model.SourceText {
				t.Errorf("expected text source, got %s", tk.Source)
			}
			if tk.Priority == 0 {
				t.Errorf("expected ranked priority, got 0 for %q", tk.Description)
			}
		}
	})

	t.Run("Falls Back To Heuristic", func(t *testing.T) {
		repo := newRepo(t)
		llmEx := &stubExtractor{err: errors.New("model unreachable")}
		uc := usecase.New(
			pkgLog.NewNop(), repo,
			llmEx, &failingRanker{},
			extract.NewHeuristicExtractor(), rank.NewHeuristicRanker(),
			&stubTranscriber{},
		)

		out, err := uc.ExtractFromText(ctx, task.ExtractInput{RawText: "Buy milk. Call Bob by Friday."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Engine != task.EngineHeuristic {
			t.Errorf("expected heuristic engine, got %s", out.Engine)
		}
		if llmEx.calls != 1 {
			t.Errorf("model extractor should be tried once, got %d", llmEx.calls)
		}
		if out.Count != 2 {
			t.Fatalf("expected 2 tasks, got %d: %+v", out.Count, out.Tasks)
		}
	})

	t.Run("Re-Ranks Existing Tasks", func(t *testing.T) {
		repo := newRepo(t)
		uc := newUseCase(t, repo)

		if _, err := uc.Add(ctx, task.AddInput{Description: "Water plants"}); err != nil {
			t.Fatal(err)
		}
		if _, err := uc.ExtractFromText(ctx, task.ExtractInput{RawText: "Submit report asap"}); err != nil {
			t.Fatal(err)
		}

		list, err := uc.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if list.Count != 2 {
			t.Fatalf("expected 2 tasks, got %d", list.Count)
		}
		for _, tk := range list.Tasks {
			if tk.Priority == 0 {
				t.Errorf("every pending task should carry a score, got 0 for %q", tk.Description)
			}
		}
		if list.Tasks[0].Description != "Submit report asap" {
			t.Errorf("deadline task should rank first, got %q", list.Tasks[0].Description)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		uc := newUseCase(t, newRepo(t))
		if _, err := uc.ExtractFromText(ctx, task.ExtractInput{RawText: " "}); !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("No Candidates", func(t *testing.T) {
		uc := newUseCase(t, newRepo(t))
		if _, err := uc.ExtractFromText(ctx, task.ExtractInput{RawText: "!!! ... 123"}); !errors.Is(err, task.ErrNoTasksExtracted) {
			t.Errorf("expected ErrNoTasksExtracted, got %v", err)
		}
	})
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("Transcript Becomes Tasks", func(t *testing.T) {
		repo := newRepo(t)
		uc := usecase.New(
			pkgLog.NewNop(), repo,
			nil, nil,
			extract.NewHeuristicExtractor(), rank.NewHeuristicRanker(),
			&stubTranscriber{text: "Buy milk. Call Bob."},
		)

		out, err := uc.Transcribe(ctx, task.TranscribeInput{FilePath: "/tmp/memo.wav"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transcript != "Buy milk. Call Bob." {
			t.Errorf("got transcript %q", out.Transcript)
		}
		if out.Count != 2 {
			t.Fatalf("expected 2 tasks, got %d", out.Count)
		}
		for _, tk := range out.Tasks {
			if tk.Source != model.SourceTranscript {
				t.Errorf("expected transcript source, got %s", tk.Source)
			}
		}
	})

	t.Run("Empty Transcript", func(t *testing.T) {
		uc := usecase.New(
			pkgLog.NewNop(), newRepo(t),
			nil, nil,
			extract.NewHeuristicExtractor(), rank.NewHeuristicRanker(),
			&stubTranscriber{text: "   "},
		)
		if _, err := uc.Transcribe(ctx, task.TranscribeInput{FilePath: "/tmp/memo.wav"}); !errors.Is(err, task.ErrEmptyTranscript) {
			t.Errorf("expected ErrEmptyTranscript, got %v", err)
		}
	})

	t.Run("Transcriber Error Propagates", func(t *testing.T) {
		trErr := errors.New("ffmpeg missing")
		uc := usecase.New(
			pkgLog.NewNop(), newRepo(t),
			nil, nil,
			extract.NewHeuristicExtractor(), rank.NewHeuristicRanker(),
			&stubTranscriber{err: trErr},
		)
		if _, err := uc.Transcribe(ctx, task.TranscribeInput{FilePath: "/tmp/memo.wav"}); !errors.Is(err, trErr) {
			t.Errorf("expected transcriber error, got %v", err)
		}
	})

	t.Run("Empty Path", func(t *testing.T) {
		uc := newUseCase(t, newRepo(t))
		if _, err := uc.Transcribe(ctx, task.TranscribeInput{}); !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})
}

func TestRank(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Store", func(t *testing.T) {
		uc := newUseCase(t, newRepo(t))
		out, err := uc.Rank(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 0 {
			t.Errorf("expected empty output, got %+v", out)
		}
	})

	t.Run("Persists New Order", func(t *testing.T) {
		repo := newRepo(t)
		uc := newUseCase(t, repo)

		if _, err := uc.Add(ctx, task.AddInput{Description: "Buy milk"}); err != nil {
			t.Fatal(err)
		}
		if _, err := uc.Add(ctx, task.AddInput{Description: "Call Bob by Friday"}); err != nil {
			t.Fatal(err)
		}

		out, err := uc.Rank(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Engine != task.EngineHeuristic {
			t.Errorf("expected heuristic engine, got %s", out.Engine)
		}
		if out.Tasks[0].Description != "Call Bob by Friday" {
			t.Errorf("deadline task should rank first, got %q", out.Tasks[0].Description)
		}

		// The order survives a reload from the repository.
		list, err := uc.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if list.Tasks[0].Description != "Call Bob by Friday" {
			t.Errorf("persisted order wrong, got %q first", list.Tasks[0].Description)
		}
	})

	t.Run("Model Failure Falls Back", func(t *testing.T) {
		repo := newRepo(t)
		fr := &failingRanker{}
		uc := usecase.New(
			pkgLog.NewNop(), repo,
			nil, fr,
			extract.NewHeuristicExtractor(), rank.NewHeuristicRanker(),
			&stubTranscriber{},
		)

		if _, err := uc.Add(ctx, task.AddInput{Description: "Buy milk"}); err != nil {
			t.Fatal(err)
		}
		out, err := uc.Rank(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fr.calls != 1 {
			t.Errorf("model ranker should be tried once, got %d", fr.calls)
		}
		if out.Engine != task.EngineHeuristic {
			t.Errorf("expected heuristic engine, got %s", out.Engine)
		}
	})
}
