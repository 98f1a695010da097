package mindmap

import (
	"context"
	"log"
	"strings"

	"creative-studio/internal/llm"
)

// Service answers the classify/analyze/summarize operations. Every path
// degrades deterministically: a failed provider call or unusable reply
// produces a synthetic result built from the input text instead of an error.
type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.Disabled()
	}
	return &Service{client: client}
}

// ErrorEnvelope wraps raw model text that survived the call but failed
// normalization, so callers can debug what the model actually said.
func ErrorEnvelope(raw string) map[string]any {
	return map[string]any{"error": "Invalid JSON", "raw": raw}
}

// Classify picks the visualization mode for text. Without a provider the
// decision follows the same rules the prompt states, as plain heuristics.
func (s *Service) Classify(ctx context.Context, text string) map[string]any {
	resp, err := s.client.Generate(ctx, classifyPrompt(text))
	if err != nil {
		log.Printf("⚠️ Mindmap classify: provider failed (%v), using heuristic", err)
		return map[string]any{"mode": classifyHeuristic(text)}
	}
	obj := llm.ForceObject(resp.Content)
	if obj == nil {
		return ErrorEnvelope(resp.Content)
	}
	return obj
}

var stepMarkers = []string{"step", "first", "then", "next", "finally", "process"}

func classifyHeuristic(text string) string {
	lower := strings.ToLower(text)
	for _, m := range stepMarkers {
		if strings.Contains(lower, m) {
			return ModeFlowchart
		}
	}
	if len(text) > 600 {
		return ModeSummary
	}
	if len(strings.Fields(text)) < 15 {
		return ModeKeywords
	}
	return ModeMindgraph
}

// Analyze builds a graph of the requested mode. The reply is always pushed
// through NormalizeGraph, so the caller gets a renderable graph even when
// the model returns a summary object, garbage, or nothing at all.
func (s *Service) Analyze(ctx context.Context, text, mode string) Graph {
	if mode == "" {
		mode = ModeMindgraph
	}
	resp, err := s.client.Generate(ctx, analyzePrompt(text, mode))
	if err != nil {
		log.Printf("⚠️ Mindmap analyze: provider failed (%v), deriving graph from text", err)
		return NormalizeGraph(snippetSummary(text), mode, text)
	}
	return NormalizeGraph(llm.ForceObject(resp.Content), mode, text)
}

// Summarize returns the six-key summary object. Without a provider the
// summary is a truncation ladder over the flattened input text.
func (s *Service) Summarize(ctx context.Context, text string) map[string]any {
	resp, err := s.client.Generate(ctx, summarizePrompt(text))
	if err != nil {
		log.Printf("⚠️ Mindmap summarize: provider failed (%v), using snippet summary", err)
		return snippetSummary(text)
	}
	obj := llm.ForceObject(resp.Content)
	if obj == nil {
		return ErrorEnvelope(resp.Content)
	}
	return obj
}

// snippetSummary flattens text to one line and truncates it at 120, 240 and
// 400 characters for the three summary depths.
func snippetSummary(text string) map[string]any {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			parts = append(parts, t)
		}
	}
	snippet := truncate(strings.Join(parts, " "), 400)
	return map[string]any{
		"title":            "Summary",
		"summary_short":    truncate(snippet, 120),
		"summary_medium":   truncate(snippet, 240),
		"summary_detailed": snippet,
		"key_points":       []any{},
		"keywords":         []any{},
	}
}

// truncate cuts on rune boundaries so multi-byte input never yields a
// broken trailing character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
