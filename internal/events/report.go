package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"creative-studio/internal/llm"
)

// ReportData is the planner state the report is built from: the basics plus
// whatever components the front-end has accumulated.
type ReportData struct {
	Basics    Basics         `json:"basics"`
	Budget    []BudgetItem   `json:"budget"`
	Schedule  []ScheduleItem `json:"schedule"`
	Checklist []Task         `json:"checklist"`
	Vendors   []Vendor       `json:"vendors"`
}

type ReportSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Report carries the rendered HTML preview, per-section text for PDF
// export, and a one-line summary.
type Report struct {
	HTML     string          `json:"html"`
	Sections []ReportSection `json:"sections"`
	Summary  string          `json:"summary"`
}

const reportSystemPrompt = "You are an expert event planning consultant and report writer. Generate comprehensive, professional event analysis reports. Return ONLY valid JSON as specified."

func buildReportPrompt(data ReportData, options map[string]any) []llm.Message {
	dataJSON, _ := json.Marshal(data)
	optJSON, _ := json.Marshal(options)
	user := fmt.Sprintf(`Generate a comprehensive AI-powered event planning report based on the following data:

Event Data: %s

Report Options: %s

CRITICAL INSTRUCTIONS FOR REPORT GENERATION:
- Analyze every detail in the event data provided above.
- Structure the report with clear sections covering budget, schedule, tasks and vendors.
- Include insights, recommendations, and risk assessment based on the data.
- Match the tone specified in the options (professional, casual, formal).
- Generate the report in HTML format for direct display in the preview.
- Keep the report comprehensive but concise.

Return JSON with:
- html: Complete HTML content for the report preview
- sections: Array of section objects with title and content for PDF generation
- summary: Brief summary of the report findings`, dataJSON, optJSON)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: reportSystemPrompt},
		{Role: llm.RoleUser, Content: user},
	}
}

// GenerateReport produces the planning report. The second return value
// reports whether the model wrote it; false means the deterministic report
// did.
func (s *Service) GenerateReport(ctx context.Context, data ReportData, options map[string]any) (any, bool) {
	resp, err := s.client.Generate(ctx, buildReportPrompt(data, options))
	if err != nil {
		log.Printf("⚠️ Report generation: provider failed (%v), using basic report", err)
		return FallbackReport(data), false
	}
	obj := llm.ForceObject(resp.Content)
	if obj == nil {
		log.Printf("⚠️ Report generation: unparseable model reply, using basic report")
		return FallbackReport(data), false
	}
	if _, ok := obj["html"]; !ok {
		log.Printf("⚠️ Report generation: model reply missing html, using basic report")
		return FallbackReport(data), false
	}
	return obj, true
}

// FallbackReport assembles a basic HTML report and its sections from the
// planner data alone.
func FallbackReport(data ReportData) Report {
	name := data.Basics.Name
	if name == "" {
		name = "event"
	}
	date := data.Basics.Date
	if date == "" {
		date = "TBD"
	}
	attendees := "TBD"
	if data.Basics.Attendees > 0 {
		attendees = fmt.Sprintf("%d", data.Basics.Attendees)
	}

	totalBudget := 0.0
	for _, item := range data.Budget {
		totalBudget += item.Amount
	}
	completed, outstanding := 0, 0
	for _, t := range data.Checklist {
		if t.Completed {
			completed++
		} else if t.Priority == "high" {
			outstanding++
		}
	}
	totalTasks := len(data.Checklist)
	completion := 0.0
	if totalTasks > 0 {
		completion = float64(completed) / float64(totalTasks) * 100
	}
	booked := 0
	for _, v := range data.Vendors {
		if v.Status == "booked" {
			booked++
		}
	}

	vendorStatus := fmt.Sprintf("%d vendors still need confirmation.", len(data.Vendors)-booked)
	if booked == len(data.Vendors) {
		vendorStatus = "All vendors are booked and ready."
	}

	var keyItems []string
	for i, item := range data.Budget {
		if i == 3 {
			break
		}
		keyItems = append(keyItems, fmt.Sprintf("%s: $%s", item.Category, money(item.Amount)))
	}
	var keyActivities []string
	for i, item := range data.Schedule {
		if i == 3 {
			break
		}
		keyActivities = append(keyActivities, item.Title)
	}

	sections := []ReportSection{
		{
			Title: "Executive Summary",
			Content: fmt.Sprintf("This comprehensive event planning report analyzes the %s scheduled for %s. The event is projected to accommodate %s attendees with a total budget of $%s.",
				name, date, attendees, money(totalBudget)),
		},
		{
			Title: "Budget Analysis",
			Content: fmt.Sprintf("The total estimated budget is $%s, distributed across %d categories. Key budget items include %s.",
				money(totalBudget), len(data.Budget), strings.Join(keyItems, ", ")),
		},
		{
			Title: "Schedule Overview",
			Content: fmt.Sprintf("The event schedule includes %d activities spanning the planned duration. Key activities include %s.",
				len(data.Schedule), strings.Join(keyActivities, ", ")),
		},
		{
			Title: "Task Progress",
			Content: fmt.Sprintf("Task completion stands at %d/%d (%.1f%%). %d high-priority tasks remain outstanding.",
				completed, totalTasks, completion, outstanding),
		},
		{
			Title: "Vendor Status",
			Content: fmt.Sprintf("Vendor coordination shows %d out of %d vendors confirmed. %s",
				booked, len(data.Vendors), vendorStatus),
		},
		{
			Title:   "Recommendations",
			Content: "Focus on completing remaining high-priority tasks, confirming all vendor bookings, and establishing contingency plans. Regular progress reviews and clear communication channels will ensure successful event execution.",
		},
	}

	var b strings.Builder
	b.WriteString(`<div class="ai-report">`)
	b.WriteString(`<div class="alert alert-info mb-4"><h5>AI-Generated Event Analysis Report</h5>`)
	b.WriteString(`<p class="mb-0">This report provides a comprehensive analysis of your event planning data.</p></div>`)
	fmt.Fprintf(&b, `<div class="card mb-4"><div class="card-header"><h6 class="mb-0">Event Overview</h6></div><div class="card-body"><h5>%s</h5><p class="text-muted mb-2">%s</p><p><small class="text-muted">Date</small> <strong>%s</strong> &middot; <small class="text-muted">Attendees</small> <strong>%s</strong></p></div></div>`,
		name, data.Basics.Type, date, attendees)
	fmt.Fprintf(&b, `<div class="card mb-4"><div class="card-header"><h6 class="mb-0">Planning Progress</h6></div><div class="card-body"><p>Vendors <strong>%d/%d</strong> &middot; Tasks <strong>%d/%d</strong> &middot; Budget <strong>$%s</strong></p></div></div>`,
		booked, len(data.Vendors), completed, totalTasks, money(totalBudget))
	for _, sec := range sections {
		fmt.Fprintf(&b, `<div class="card mb-4"><div class="card-header"><h6 class="mb-0">%s</h6></div><div class="card-body"><p>%s</p></div></div>`,
			sec.Title, sec.Content)
	}
	b.WriteString(`</div>`)

	return Report{
		HTML:     b.String(),
		Sections: sections,
		Summary: fmt.Sprintf("Comprehensive analysis of %s planning progress. Budget: $%s, Tasks: %d/%d complete, Vendors: %d/%d booked.",
			name, money(totalBudget), completed, totalTasks, booked, len(data.Vendors)),
	}
}

// money renders an amount with thousands separators and no decimals.
func money(amount float64) string {
	whole := fmt.Sprintf("%.0f", amount)
	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}
	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
