package events

import (
	"context"
	"log"

	"creative-studio/internal/llm"
)

// requiredKey gates acceptance of a model response per component: an object
// missing its key is treated as a failed generation and replaced by the
// deterministic result.
var requiredKey = map[string]string{
	ComponentBudget:   "budget_items",
	ComponentSchedule: "schedule_items",
	ComponentTasks:    "tasks",
	ComponentVendors:  "vendor_recommendations",
}

// questionFor phrases a follow-up for each required plan field.
var questionFor = map[string]string{
	"name":      "What is the event name?",
	"type":      "What type of event is this? (e.g., Wedding, Corporate Conference, Birthday Party, Tech Conference, Music Festival, Charity Gala, College Event, Other)",
	"date":      "What is the event date? (YYYY-MM-DD)",
	"attendees": "How many attendees do you expect?",
}

// Service runs the generation pipeline for the planner: build a prompt, ask
// the model, normalize the reply, and fall back to the deterministic
// generators when any step fails. It never returns an error to callers on
// the generation path.
type Service struct {
	client llm.Client
	store  *Store
}

func NewService(client llm.Client, store *Store) *Service {
	if client == nil {
		client = llm.Disabled()
	}
	return &Service{client: client, store: store}
}

func (s *Service) Store() *Store { return s.store }

// GenerateComponent produces one component for the given basics. The second
// return value reports whether the model produced the result; false means
// the deterministic generator did.
func (s *Service) GenerateComponent(ctx context.Context, component string, basics Basics, current any) (any, bool) {
	messages := BuildComponentPrompt(component, basics, current)
	resp, err := s.client.Generate(ctx, messages)
	if err != nil {
		log.Printf("⚠️ %s generation: provider failed (%v), using deterministic plan", component, err)
		return s.deterministic(component, basics), false
	}
	obj := llm.ForceObject(resp.Content)
	if obj == nil {
		log.Printf("⚠️ %s generation: unparseable model reply, using deterministic plan", component)
		return s.deterministic(component, basics), false
	}
	if key := requiredKey[component]; key != "" {
		if _, ok := obj[key]; !ok {
			log.Printf("⚠️ %s generation: model reply missing %q, using deterministic plan", component, key)
			return s.deterministic(component, basics), false
		}
	}
	return obj, true
}

func (s *Service) deterministic(component string, basics Basics) any {
	switch component {
	case ComponentBudget:
		return GenerateBudget(basics, nil)
	case ComponentSchedule:
		return GenerateSchedule(basics, nil)
	case ComponentTasks:
		return GenerateTasks(basics, nil)
	case ComponentVendors:
		return GenerateVendors(basics, "")
	}
	return nil
}

// GenerateForEvent regenerates one component of a stored event, persisting
// the result. The event's current component data is fed back as context.
func (s *Service) GenerateForEvent(ctx context.Context, id, component string) (*Event, any, error) {
	ev, err := s.store.Get(id)
	if err != nil {
		return nil, nil, err
	}
	var current any
	if ev.Components != nil {
		current = ev.Components[component]
	}
	result, _ := s.GenerateComponent(ctx, component, ev.Basics, current)
	updated, err := s.store.SetComponent(id, component, result)
	if err != nil {
		return nil, nil, err
	}
	return updated, result, nil
}

// FieldQuestion is a follow-up prompt for one missing plan field.
type FieldQuestion struct {
	Field    string `json:"field"`
	Question string `json:"question"`
}

// PlanResult is the reply for a planning request: the preview plus what is
// still needed to make the plan complete.
type PlanResult struct {
	Basics        Basics          `json:"basics"`
	Preview       map[string]any  `json:"preview"`
	MissingFields []string        `json:"missing_fields"`
	Questions     []FieldQuestion `json:"questions"`
}

// Plan extracts basics from free text, merges them with any explicit fields,
// and produces a plan preview. The model enhances the preview when
// available; otherwise the template preview stands.
func (s *Service) Plan(ctx context.Context, text string, explicit Basics) PlanResult {
	basics := MergeExtracted(explicit, ExtractBasics(text))
	if basics.Description == "" {
		basics.Description = text
	}

	template := GeneratePlan(basics)
	preview := previewToMap(template)

	resp, err := s.client.Generate(ctx, BuildPlanPrompt(basics, template))
	if err == nil {
		if obj := llm.ForceObject(resp.Content); obj != nil {
			if _, ok := obj["event_name"]; ok {
				preview = obj
			}
		}
	}

	missing := MissingFields(basics)
	questions := make([]FieldQuestion, 0, len(missing))
	for _, f := range missing {
		questions = append(questions, FieldQuestion{Field: f, Question: questionFor[f]})
	}
	return PlanResult{
		Basics:        basics,
		Preview:       preview,
		MissingFields: missing,
		Questions:     questions,
	}
}

func previewToMap(p PlanPreview) map[string]any {
	return map[string]any{
		"event_name":             p.EventName,
		"event_type":             p.EventType,
		"objectives":             p.Objectives,
		"key_considerations":     p.KeyConsiderations,
		"recommended_themes":     p.RecommendedThemes,
		"estimated_budget_range": p.EstimatedBudgetRange,
		"attendee_count":         p.AttendeeCount,
		"suggested_duration":     p.SuggestedDuration,
		"planning_timeline":      p.PlanningTimeline,
	}
}
