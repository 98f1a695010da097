package events

import (
	"context"
	"strings"
	"testing"

	"creative-studio/internal/llm"
)

func testReportData() ReportData {
	return ReportData{
		Basics: Basics{Name: "Spring Gala", Type: "Charity Gala", Date: "2026-04-18", Attendees: 120},
		Budget: []BudgetItem{
			{Category: "Venue", Amount: 12000},
			{Category: "Catering", Amount: 8000},
		},
		Schedule: []ScheduleItem{
			{Title: "Doors open", StartTime: "18:00", EndTime: "18:30"},
			{Title: "Dinner service", StartTime: "19:00", EndTime: "20:30"},
		},
		Checklist: []Task{
			{Title: "Book venue", Completed: true, Priority: "high"},
			{Title: "Confirm caterer", Priority: "high"},
			{Title: "Print programs", Priority: "low"},
		},
		Vendors: []Vendor{
			{Name: "Riverside Hall", Status: "booked"},
			{Name: "Fresh Plates", Status: "contacted"},
		},
	}
}

func TestFallbackReportSections(t *testing.T) {
	report := FallbackReport(testReportData())

	if len(report.Sections) != 6 {
		t.Fatalf("sections = %d, want 6", len(report.Sections))
	}
	wantTitles := []string{
		"Executive Summary", "Budget Analysis", "Schedule Overview",
		"Task Progress", "Vendor Status", "Recommendations",
	}
	for i, title := range wantTitles {
		if report.Sections[i].Title != title {
			t.Fatalf("section %d title = %q, want %q", i, report.Sections[i].Title, title)
		}
	}
	if !strings.Contains(report.Sections[0].Content, "$20,000") {
		t.Fatalf("executive summary missing total budget: %q", report.Sections[0].Content)
	}
	if !strings.Contains(report.Sections[3].Content, "1/3") {
		t.Fatalf("task progress wrong: %q", report.Sections[3].Content)
	}
	if !strings.Contains(report.Sections[4].Content, "1 out of 2") {
		t.Fatalf("vendor status wrong: %q", report.Sections[4].Content)
	}
	if !strings.Contains(report.HTML, "Spring Gala") || !strings.HasPrefix(report.HTML, `<div class="ai-report">`) {
		t.Fatalf("html preview malformed: %.80q", report.HTML)
	}
	if !strings.Contains(report.Summary, "Tasks: 1/3 complete") {
		t.Fatalf("summary = %q", report.Summary)
	}
}

func TestGenerateReportDisabledProviderFallsBack(t *testing.T) {
	svc := NewService(llm.Disabled(), newTestStore(t))
	result, fromModel := svc.GenerateReport(context.Background(), testReportData(), nil)
	if fromModel {
		t.Fatal("disabled provider reported a model result")
	}
	if _, ok := result.(Report); !ok {
		t.Fatalf("fallback result is %T, want Report", result)
	}
}

func TestGenerateReportModelReplyNeedsHTML(t *testing.T) {
	svc := NewService(stubLLM{content: `{"sections": [], "summary": "s"}`}, newTestStore(t))
	result, fromModel := svc.GenerateReport(context.Background(), testReportData(), nil)
	if fromModel {
		t.Fatal("reply without html should have been rejected")
	}
	if _, ok := result.(Report); !ok {
		t.Fatalf("fallback result is %T, want Report", result)
	}

	svc = NewService(stubLLM{content: `{"html": "<div>ok</div>", "sections": [], "summary": "s"}`}, newTestStore(t))
	result, fromModel = svc.GenerateReport(context.Background(), testReportData(), map[string]any{"tone": "formal"})
	if !fromModel {
		t.Fatal("reply with html was rejected")
	}
	obj, ok := result.(map[string]any)
	if !ok || obj["html"] != "<div>ok</div>" {
		t.Fatalf("model result = %v", result)
	}
}

func TestMoneyFormatting(t *testing.T) {
	cases := map[float64]string{
		0:        "0",
		950:      "950",
		20000:    "20,000",
		1234567:  "1,234,567",
		-4500:    "-4,500",
		12500.75: "12,501",
	}
	for amount, want := range cases {
		if got := money(amount); got != want {
			t.Fatalf("money(%v) = %q, want %q", amount, got, want)
		}
	}
}
