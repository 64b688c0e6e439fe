package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tasktracker/pkg/llmprovider"
	pkgLog "tasktracker/pkg/log"
)

// Generator is the slice of the LLM provider manager this package needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLMExtractor extracts tasks via a generative model.
type LLMExtractor struct {
	llm Generator
	l   pkgLog.Logger
}

var _ Extractor = (*LLMExtractor)(nil)

// NewLLMExtractor creates a model-backed extractor.
func NewLLMExtractor(llm Generator, l pkgLog.Logger) *LLMExtractor {
	return &LLMExtractor{llm: llm, l: l}
}

// Extract sends rawText to the model and parses the JSON array it returns.
// A model failure or a malformed response is returned as an error so the
// caller can switch to the deterministic fallback.
func (e *LLMExtractor) Extract(ctx context.Context, rawText string) ([]string, error) {
	if strings.TrimSpace(rawText) == "" {
		return []string{}, nil
	}

	resp, err := e.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: taskExtractionSystemPrompt,
		Prompt:            buildExtractionPrompt(rawText),
		Temperature:       0.2, // low temperature for deterministic JSON output
		MaxTokens:         2048,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction model call failed: %w", err)
	}

	e.l.Debugf(ctx, "extract: raw model response: %s", resp.Text)

	cleaned := SanitizeJSONResponse(resp.Text)

	var candidates []string
	if err := json.Unmarshal([]byte(cleaned), &candidates); err != nil {
		e.l.Warnf(ctx, "extract: failed to parse model response. Raw=%q Cleaned=%q", resp.Text, cleaned)
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out, nil
}
