package todo

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"

	"creative-studio/internal/llm"
)

// Task carries the fields the assistant reads from the front-end's task
// objects; everything else is ignored.
type Task struct {
	Title    string `json:"title"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

var priorities = []string{"low", "medium", "high", "urgent"}
var bestTimes = []string{"morning", "midday", "afternoon", "evening"}

const (
	defaultPriority = "medium"
	defaultBestTime = "midday"
	defaultDuration = 40
	minDuration     = 5
	maxDuration     = 480
)

// Service handles the analyze and suggest actions for the todo app. Every
// action has a deterministic answer when the provider is down, and model
// replies for the enum-valued actions are clamped to their allowed sets.
type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.Disabled()
	}
	return &Service{client: client}
}

func (s *Service) ask(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Generate(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

// Analyze dispatches on action: rewrite, priority, summarize or
// weeklyInsights. Unknown actions produce an error value in the result map.
func (s *Service) Analyze(ctx context.Context, action, text string, tasks []Task) map[string]any {
	switch action {
	case "rewrite":
		return map[string]any{"rewrite": s.rewrite(ctx, text)}
	case "priority":
		return map[string]any{"priority": s.priority(ctx, text)}
	case "summarize":
		return map[string]any{"summary": s.summarize(ctx, tasks)}
	case "weeklyInsights":
		return map[string]any{"insights": s.weeklyInsights(ctx, tasks)}
	default:
		return map[string]any{"error": "Unknown action: " + action}
	}
}

// Suggest dispatches on action: subtasks, bestTime or duration.
func (s *Service) Suggest(ctx context.Context, action, text string) map[string]any {
	switch action {
	case "subtasks":
		return map[string]any{"subtasks": s.subtasks(ctx, text)}
	case "bestTime":
		return map[string]any{"bestTime": s.bestTime(ctx, text)}
	case "duration":
		return map[string]any{"duration": s.duration(ctx, text)}
	default:
		return map[string]any{"error": "Unknown action: " + action}
	}
}

func (s *Service) rewrite(ctx context.Context, text string) string {
	prompt := fmt.Sprintf("Rewrite this task into an actionable, professional format:\n'%s'\nProvide only the rewritten task.", text)
	if out, err := s.ask(ctx, prompt); err == nil && out != "" {
		return out
	}
	log.Printf("⚠️ Todo rewrite: provider unavailable, returning cleaned text")
	return capitalize(strings.TrimSpace(text))
}

var urgentWords = []string{"urgent", "asap", "immediately", "now", "critical"}
var highWords = []string{"important", "deadline", "today", "must"}
var lowWords = []string{"sometime", "maybe", "eventually", "later", "whenever"}

func (s *Service) priority(ctx context.Context, text string) string {
	prompt := fmt.Sprintf("Predict the priority level (low/medium/high/urgent) for this task:\n'%s'\nRespond with only the priority word.", text)
	if out, err := s.ask(ctx, prompt); err == nil {
		out = strings.ToLower(out)
		for _, p := range priorities {
			if out == p {
				return p
			}
		}
		return defaultPriority
	}
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, urgentWords):
		return "urgent"
	case containsAny(lower, highWords):
		return "high"
	case containsAny(lower, lowWords):
		return "low"
	}
	return defaultPriority
}

func (s *Service) summarize(ctx context.Context, tasks []Task) string {
	total := len(tasks)
	completed, high := taskCounts(tasks)
	pending := total - completed
	prompt := fmt.Sprintf("Summarize the productivity of a user with %d tasks: %d completed, %d pending, %d high-priority. Provide a 2-3 sentence insight.",
		total, completed, pending, high)
	if out, err := s.ask(ctx, prompt); err == nil && out != "" {
		return out
	}
	return fmt.Sprintf("You have %d tasks: %d completed and %d pending, with %d marked high priority. Clearing the high-priority items first will keep the list moving.",
		total, completed, pending, high)
}

func (s *Service) weeklyInsights(ctx context.Context, tasks []Task) string {
	completed, _ := taskCounts(tasks)
	prompt := fmt.Sprintf("Analyze weekly productivity: %d tasks total, %d completed this week. Provide 3-4 key insights and recommendations.",
		len(tasks), completed)
	if out, err := s.ask(ctx, prompt); err == nil && out != "" {
		return out
	}
	rate := 0
	if len(tasks) > 0 {
		rate = completed * 100 / len(tasks)
	}
	return fmt.Sprintf("This week you completed %d of %d tasks (%d%%). Keep batching similar tasks together, schedule the hardest one early in the day, and carry unfinished items forward explicitly instead of letting them linger.",
		completed, len(tasks), rate)
}

func (s *Service) subtasks(ctx context.Context, text string) []string {
	prompt := fmt.Sprintf("Break down this task into 5-7 concrete subtasks:\n'%s'\nProvide as a simple numbered list.", text)
	if out, err := s.ask(ctx, prompt); err == nil && out != "" {
		var subtasks []string
		for _, line := range strings.Split(out, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				subtasks = append(subtasks, line)
			}
		}
		if len(subtasks) > 0 {
			return subtasks
		}
	}
	task := strings.TrimSpace(text)
	if task == "" {
		task = "the task"
	}
	return []string{
		"1. Clarify the outcome expected for: " + task,
		"2. List the materials or information needed",
		"3. Block time on the calendar",
		"4. Do the first concrete step",
		"5. Review progress and adjust",
		"6. Finish and mark the task complete",
	}
}

func (s *Service) bestTime(ctx context.Context, text string) string {
	prompt := fmt.Sprintf("What is the ideal time of day to complete this task?\n'%s'\nRespond with one of: morning / midday / afternoon / evening", text)
	if out, err := s.ask(ctx, prompt); err == nil {
		out = strings.ToLower(out)
		for _, t := range bestTimes {
			if out == t {
				return t
			}
		}
	}
	return defaultBestTime
}

func (s *Service) duration(ctx context.Context, text string) int {
	prompt := fmt.Sprintf("Estimate the duration (in minutes) for this task:\n'%s'\nRespond with only a number (e.g., 45).", text)
	if out, err := s.ask(ctx, prompt); err == nil {
		if n, ok := digitsValue(out); ok {
			return clampDuration(n)
		}
	}
	return defaultDuration
}

func clampDuration(n int) int {
	if n < minDuration {
		return minDuration
	}
	if n > maxDuration {
		return maxDuration
	}
	return n
}

// digitsValue concatenates every digit in s into one number, matching how
// the estimate reply is parsed even when wrapped in prose.
func digitsValue(s string) (int, bool) {
	n := 0
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			found = true
			n = n*10 + int(r-'0')
			if n > 100000 {
				return maxDuration, true
			}
		}
	}
	return n, found
}

func taskCounts(tasks []Task) (completed, high int) {
	for _, t := range tasks {
		if t.Status == "completed" {
			completed++
		}
		if t.Priority == "high" {
			high++
		}
	}
	return completed, high
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
