package extract

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// listMarkerRe strips leading bullet/number markers from a fragment.
var listMarkerRe = regexp.MustCompile(`^(?:[-*•–]+|\d+[.)])\s*`)

// HeuristicExtractor is the deterministic, offline fallback: it splits text
// on sentence-ending punctuation and line breaks and treats each non-empty
// fragment as one task candidate.
type HeuristicExtractor struct{}

var _ Extractor = (*HeuristicExtractor)(nil)

// NewHeuristicExtractor creates the rule-based extractor.
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

// Extract splits rawText into candidates. Pure; no network dependency.
func (e *HeuristicExtractor) Extract(ctx context.Context, rawText string) ([]string, error) {
	fragments := strings.FieldsFunc(rawText, func(r rune) bool {
		switch r {
		case '.', '!', '?', ';', '\n', '\r':
			return true
		}
		return false
	})

	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		f = listMarkerRe.ReplaceAllString(f, "")
		f = strings.TrimSpace(f)
		if f != "" && hasLetter(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

// hasLetter filters out fragments that are pure numbering or punctuation
// left over from splitting, e.g. the "3" in "3. pay rent".
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
