package magazine

import (
	"context"
	"strings"
	"testing"

	"creative-studio/internal/llm"
)

type stubLLM struct {
	content string
	err     error
}

func (s stubLLM) Generate(_ context.Context, _ []llm.Message) (llm.Response, error) {
	if s.err != nil {
		return llm.Response{}, s.err
	}
	return llm.Response{Content: s.content}, nil
}

func TestGenerateSynthesizesWithoutProvider(t *testing.T) {
	svc := NewService(llm.Disabled())
	req := Request{
		EventName:   "Hack the Campus",
		RawData:     "120 participants, 24 hours, 30 projects",
		ArticleType: "Feature Article",
		MagIssue:    "Fall 2026",
	}
	result := svc.Generate(context.Background(), req)
	article, ok := result.(Article)
	if !ok {
		t.Fatalf("result is %T, want Article", result)
	}
	if !strings.Contains(article.SummaryThick, "Hack the Campus") {
		t.Fatalf("summary_thick missing event name: %q", article.SummaryThick)
	}
	if !strings.Contains(article.SummaryThick, "120 participants") {
		t.Fatalf("summary_thick missing raw notes: %q", article.SummaryThick)
	}
	if article.PullQuote != `"Hack the Campus"` {
		t.Fatalf("pull_quote = %q", article.PullQuote)
	}
	if article.Caption1 == "" || article.Caption2 == "" {
		t.Fatal("captions missing")
	}
}

func TestGenerateModelReplyWithAllKeysPassesThrough(t *testing.T) {
	reply := `{"summary_thick": "a", "summary_thin": "b", "main_body": "c", "pull_quote": "d", "caption1": "e", "caption2": "f"}`
	svc := NewService(stubLLM{content: reply})
	result := svc.Generate(context.Background(), Request{EventName: "X"})
	obj, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result is %T, want map", result)
	}
	if obj["main_body"] != "c" {
		t.Fatalf("main_body = %v", obj["main_body"])
	}
}

func TestGenerateIncompleteModelReplySynthesized(t *testing.T) {
	svc := NewService(stubLLM{content: `{"summary_thick": "only one key"}`})
	result := svc.Generate(context.Background(), Request{EventName: "Tech Expo", MagIssue: "Spring 2026"})
	if _, ok := result.(Article); !ok {
		t.Fatalf("incomplete reply should synthesize, got %T", result)
	}
}

func TestSynthesizeTruncatesLongNotes(t *testing.T) {
	article := synthesize(Request{EventName: "E", RawData: strings.Repeat("n", 500)})
	if strings.Count(article.SummaryThick, "n") > 220 {
		t.Fatalf("raw notes not truncated: %d chars", strings.Count(article.SummaryThick, "n"))
	}
}

func TestSynthesizeTruncatesOnRuneBoundary(t *testing.T) {
	article := synthesize(Request{EventName: "E", RawData: strings.Repeat("é", 300)})
	if strings.ContainsRune(article.SummaryThick, '�') {
		t.Fatalf("truncation split a rune: %q", article.SummaryThick)
	}
	if strings.Count(article.SummaryThick, "é") != 220 {
		t.Fatalf("truncated to %d runes, want 220", strings.Count(article.SummaryThick, "é"))
	}
}
