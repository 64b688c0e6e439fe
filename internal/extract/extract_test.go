package extract_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tasktracker/internal/extract"
	"tasktracker/pkg/llmprovider"
	pkgLog "tasktracker/pkg/log"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, ProviderName: "fake"}, nil
}

func TestLLMExtractor(t *testing.T) {
	ctx := context.Background()

	t.Run("Parses JSON Array", func(t *testing.T) {
		gen := &fakeGenerator{text: `["Finish report", "Email client"]`}
		e := extract.NewLLMExtractor(gen, pkgLog.NewNop())

		got, err := e.Extract(ctx, "finish the report and email the client")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"Finish report", "Email client"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Strips Code Fences", func(t *testing.T) {
		gen := &fakeGenerator{text: "Here you go:\n```json\n[\"Buy milk\"]\n```"}
		e := extract.NewLLMExtractor(gen, pkgLog.NewNop())

		got, err := e.Extract(ctx, "buy milk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0] != "Buy milk" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("Empty Input No Call", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("must not be called")}
		e := extract.NewLLMExtractor(gen, pkgLog.NewNop())

		got, err := e.Extract(ctx, "   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})

	t.Run("Model Failure Propagates", func(t *testing.T) {
		gen := &fakeGenerator{err: llmprovider.ErrAllProvidersFailed}
		e := extract.NewLLMExtractor(gen, pkgLog.NewNop())

		if _, err := e.Extract(ctx, "do things"); !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected wrapped provider error, got %v", err)
		}
	})

	t.Run("Malformed Response Is Error", func(t *testing.T) {
		gen := &fakeGenerator{text: "sure, here are your tasks!"}
		e := extract.NewLLMExtractor(gen, pkgLog.NewNop())

		if _, err := e.Extract(ctx, "do things"); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("Blank Candidates Dropped", func(t *testing.T) {
		gen := &fakeGenerator{text: `["Buy milk", "  ", ""]`}
		e := extract.NewLLMExtractor(gen, pkgLog.NewNop())

		got, _ := e.Extract(ctx, "buy milk")
		if len(got) != 1 {
			t.Errorf("expected 1 candidate, got %v", got)
		}
	})
}

func TestHeuristicExtractor(t *testing.T) {
	ctx := context.Background()
	e := extract.NewHeuristicExtractor()

	t.Run("Sentence Split", func(t *testing.T) {
		got, err := e.Extract(ctx, "Finish report. Email client. Schedule meeting")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"Finish report", "Email client", "Schedule meeting"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Line Breaks And Markers", func(t *testing.T) {
		got, _ := e.Extract(ctx, "- buy milk\n* walk the dog\n3. pay rent")
		want := []string{"buy milk", "walk the dog", "pay rent"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		got, err := e.Extract(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})

	t.Run("Whitespace Only", func(t *testing.T) {
		got, _ := e.Extract(ctx, " \n\n  ")
		if len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})

	t.Run("Exclamations And Questions", func(t *testing.T) {
		got, _ := e.Extract(ctx, "Call Bob now! Did you send the invoice?")
		want := []string{"Call Bob now", "Did you send the invoice"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestSanitizeJSONResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Plain Array", `["a"]`, `["a"]`},
		{"Fenced", "```json\n[\"a\"]\n```", `["a"]`},
		{"Fenced No Lang", "```\n[\"a\"]\n```", `["a"]`},
		{"Surrounding Prose", `Sure! ["a", "b"] Hope that helps.`, `["a", "b"]`},
		{"No JSON", "nothing here", "nothing here"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extract.SanitizeJSONResponse(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
