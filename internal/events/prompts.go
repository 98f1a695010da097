package events

import (
	"encoding/json"
	"fmt"
	"strings"

	"creative-studio/internal/llm"
)

const componentSystemPrompt = "You are an expert event planner. Return ONLY valid JSON for the requested component. Do not include any extra text, explanations, or markdown."

const planSystemPrompt = "You are an expert event planner. When asked, return ONLY valid JSON matching the requested schema."

const budgetInstructions = `
CRITICAL INSTRUCTIONS FOR BUDGET GENERATION:
- You are an expert event planner AI. Read and analyze EVERY SINGLE DETAIL in the event basics provided above.
- Understand the event type, description, venue, location, theme, duration, attendees, and all other fields.
- Think deeply about what this specific event entails and what unique expenses it would have.
- DO NOT use any generic templates or predefined categories like "Venue", "Catering", "Entertainment", "Decorations", "Marketing", "Miscellaneous".
- Instead, create COMPLETELY CUSTOM categories based on the event's specific requirements.
- Each category must be SPECIFIC to this event's unique features mentioned in the description and other fields.
- Analyze the description word by word and create budget items that directly correspond to the activities, locations, and requirements mentioned.
- Ensure the total budget fits within the specified range, and percentages add up to 100%.
- Make the budget realistic and comprehensive for this exact event.

Return JSON with total_budget (number) and budget_items (array of objects with category, name, amount, percentage, notes).`

const scheduleInstructions = `
CRITICAL INSTRUCTIONS FOR SCHEDULE GENERATION:
- You are an expert event planner AI. Read and analyze EVERY SINGLE DETAIL in the event basics provided above.
- Understand the event type, description, venue, location, theme, duration, attendees, date, and all other fields.
- Think deeply about what this specific event entails and what unique activities and timing it would have.
- DO NOT use any generic templates or predefined schedules like standard wedding/ceremony/reception or conference/registration/keynote/lunch.
- Instead, create COMPLETELY CUSTOM schedule items based on the event's specific requirements and activities mentioned.
- IMPORTANT: Do not hallucinate or add details not present in the input. Base everything on the provided data.
- Each schedule item must be SPECIFIC to this event's unique features, activities, and requirements mentioned in the description and other fields.
- Consider the event duration and spread activities appropriately across the time frame.
- Include realistic time slots with start_time and end_time in HH:MM format (24-hour).
- Ensure the schedule flows logically from start to finish, with appropriate breaks and transitions.
- Make the schedule comprehensive and tailored to this exact event.

Return JSON with schedule_items (array of objects with title, start_time, end_time, description).`

const tasksInstructions = `
CRITICAL INSTRUCTIONS FOR TASKS GENERATION:
- You are an expert event planner AI. Read and analyze EVERY SINGLE DETAIL in the event basics provided above.
- Create COMPLETELY CUSTOM tasks that directly support the event's scheduled activities and budgeted items.
- IMPORTANT: Do not hallucinate or add details not present in the input. Base everything on the provided data.
- Tasks should be practical, actionable, and organized by logical categories (e.g., Planning, Setup, Execution, Logistics, Cleanup).
- Each task should have a title, a category, and a priority of high, medium, or low.
- Ensure tasks are comprehensive but not overwhelming - aim for 15-25 total tasks depending on event complexity.

Return JSON with tasks (array of objects with title, category, priority).`

const vendorsInstructions = `
CRITICAL INSTRUCTIONS FOR VENDOR RECOMMENDATIONS:
- Recommend vendors whose services directly match the activities and requirements in the event basics.
- Do not invent generic vendor categories; derive categories from the event's literal description.

Return JSON with vendor_recommendations (array of objects with category, name, type, rating, price_range, contact, status, notes).`

// orNotSpecified keeps the prompt template complete: the model always sees
// every field, with absent values spelled out.
func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

func renderBasics(basics Basics) string {
	attendees := "Not specified"
	if basics.Attendees > 0 {
		attendees = fmt.Sprintf("%d", basics.Attendees)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", orNotSpecified(basics.Name))
	fmt.Fprintf(&b, "Type: %s\n", orNotSpecified(basics.Type))
	fmt.Fprintf(&b, "Date: %s\n", orNotSpecified(basics.Date))
	fmt.Fprintf(&b, "Attendees: %s\n", attendees)
	fmt.Fprintf(&b, "Duration: %s\n", orNotSpecified(basics.Duration))
	fmt.Fprintf(&b, "Description: %s\n", orNotSpecified(basics.Description))
	fmt.Fprintf(&b, "Budget range: %s\n", orNotSpecified(basics.Budget))
	fmt.Fprintf(&b, "Venue: %s\n", orNotSpecified(basics.Venue))
	fmt.Fprintf(&b, "Location: %s\n", orNotSpecified(basics.Location))
	fmt.Fprintf(&b, "Theme: %s\n", orNotSpecified(basics.Theme))
	return b.String()
}

// BuildComponentPrompt produces the system/user message pair for one
// component generation. Pure function; currentData is appended verbatim as
// context for regeneration.
func BuildComponentPrompt(component string, basics Basics, currentData any) []llm.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s for the following event basics:\n%s", component, renderBasics(basics))
	if currentData != nil {
		if ctx, err := json.Marshal(currentData); err == nil {
			fmt.Fprintf(&b, "\nUse the current data as context: %s\n", ctx)
		}
	}
	switch component {
	case ComponentBudget:
		fmt.Fprintf(&b, "\nThe event budget range is: %s.\n%s", orNotSpecified(basics.Budget), budgetInstructions)
	case ComponentSchedule:
		fmt.Fprintf(&b, "\nThe event duration is: %s. The event date is: %s.\n%s",
			orNotSpecified(basics.Duration), orNotSpecified(basics.Date), scheduleInstructions)
	case ComponentTasks:
		b.WriteString("\n" + tasksInstructions)
	case ComponentVendors:
		b.WriteString("\n" + vendorsInstructions)
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: componentSystemPrompt},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

// BuildPlanPrompt asks the model to enhance a template preview, holding it to
// the template's exact key set.
func BuildPlanPrompt(basics Basics, preview PlanPreview) []llm.Message {
	tpl, _ := json.Marshal(preview)
	user := fmt.Sprintf(`Enhance and expand the following event plan using the provided basic event information. Return a single JSON object with keys exactly matching the example.

Basics:
%s
TemplateExample: %s

Instructions:
- Return a JSON object with the same keys as the TemplateExample.
- Populate fields with concrete, helpful suggestions based on the Basics.`, renderBasics(basics), tpl)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: planSystemPrompt},
		{Role: llm.RoleUser, Content: user},
	}
}
