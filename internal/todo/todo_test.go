package todo

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

func TestAnalyzeUnknownAction(t *testing.T) {
	svc := NewService(llm.Disabled())
	got := svc.Analyze(context.Background(), "translate", "", nil)
	if got["error"] != "Unknown action: translate" {
		t.Fatalf("error = %v", got["error"])
	}
}

func TestAnalyzeRewriteFallback(t *testing.T) {
	svc := NewService(llm.Disabled())
	got := svc.Analyze(context.Background(), "rewrite", "  buy milk", nil)
	if got["rewrite"] != "Buy milk" {
		t.Fatalf("rewrite = %v", got["rewrite"])
	}
}

func TestAnalyzePriorityClampsModelReply(t *testing.T) {
	cases := []struct {
		reply string
		want  string
	}{
		{"HIGH", "high"},
		{"urgent", "urgent"},
		{"somewhat pressing", "medium"},
	}
	for _, tc := range cases {
		svc := NewService(stubLLM{content: tc.reply})
		got := svc.Analyze(context.Background(), "priority", "file taxes", nil)
		if got["priority"] != tc.want {
			t.Errorf("reply %q -> priority %v, want %q", tc.reply, got["priority"], tc.want)
		}
	}
}

func TestAnalyzePriorityHeuristicFallback(t *testing.T) {
	svc := NewService(llm.Disabled())
	cases := []struct {
		text string
		want string
	}{
		{"fix the outage asap", "urgent"},
		{"submit report before the deadline", "high"},
		{"maybe reorganize the bookshelf sometime", "low"},
		{"water the plants", "medium"},
	}
	for _, tc := range cases {
		got := svc.Analyze(context.Background(), "priority", tc.text, nil)
		if got["priority"] != tc.want {
			t.Errorf("priority(%q) = %v, want %q", tc.text, got["priority"], tc.want)
		}
	}
}

func TestAnalyzeSummarizeFallbackCounts(t *testing.T) {
	svc := NewService(llm.Disabled())
	tasks := []Task{
		{Title: "a", Status: "completed", Priority: "high"},
		{Title: "b", Status: "pending", Priority: "high"},
		{Title: "c", Status: "pending", Priority: "low"},
	}
	got := svc.Analyze(context.Background(), "summarize", "", tasks)
	summary, _ := got["summary"].(string)
	if !strings.Contains(summary, "3 tasks") || !strings.Contains(summary, "1 completed") {
		t.Fatalf("summary = %q", summary)
	}
}

func TestSuggestSubtasksSplitsModelReply(t *testing.T) {
	svc := NewService(stubLLM{content: "1. First step\n\n2. Second step\n3. Third step\n"})
	got := svc.Suggest(context.Background(), "subtasks", "plan the retreat")
	subtasks, _ := got["subtasks"].([]string)
	if len(subtasks) != 3 {
		t.Fatalf("subtasks = %v", subtasks)
	}
	if subtasks[1] != "2. Second step" {
		t.Fatalf("second subtask = %q", subtasks[1])
	}
}

func TestSuggestSubtasksFallback(t *testing.T) {
	svc := NewService(llm.Disabled())
	got := svc.Suggest(context.Background(), "subtasks", "plan the retreat")
	subtasks, _ := got["subtasks"].([]string)
	if len(subtasks) < 5 {
		t.Fatalf("fallback subtasks = %v", subtasks)
	}
	if !strings.Contains(subtasks[0], "plan the retreat") {
		t.Fatalf("first subtask does not name the task: %q", subtasks[0])
	}
}

func TestSuggestBestTimeClamp(t *testing.T) {
	svc := NewService(stubLLM{content: "Evening"})
	got := svc.Suggest(context.Background(), "bestTime", "wind down routine")
	if got["bestTime"] != "evening" {
		t.Fatalf("bestTime = %v", got["bestTime"])
	}

	svc = NewService(stubLLM{content: "whenever you like"})
	got = svc.Suggest(context.Background(), "bestTime", "anything")
	if got["bestTime"] != defaultBestTime {
		t.Fatalf("unclamped bestTime = %v", got["bestTime"])
	}
}

func TestSuggestDurationClamp(t *testing.T) {
	cases := []struct {
		reply string
		want  int
	}{
		{"45", 45},
		{"about 90 minutes", 90},
		{"2", 5},
		{"100000", 480},
		{"no estimate", defaultDuration},
	}
	for _, tc := range cases {
		svc := NewService(stubLLM{content: tc.reply})
		got := svc.Suggest(context.Background(), "duration", "write the report")
		if got["duration"] != tc.want {
			t.Errorf("reply %q -> duration %v, want %d", tc.reply, got["duration"], tc.want)
		}
	}
}

func TestSuggestDurationProviderDown(t *testing.T) {
	svc := NewService(llm.Disabled())
	got := svc.Suggest(context.Background(), "duration", "anything")
	if got["duration"] != defaultDuration {
		t.Fatalf("duration = %v", got["duration"])
	}
}

func TestSuggestUnknownAction(t *testing.T) {
	svc := NewService(llm.Disabled())
	got := svc.Suggest(context.Background(), "estimateBudget", "")
	if got["error"] != "Unknown action: estimateBudget" {
		t.Fatalf("error = %v", got["error"])
	}
}
