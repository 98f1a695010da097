package events

import (
	"math"
	"reflect"
	"testing"
)

func TestParseTargetTotal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"no numbers here", 0},
		{"$5,000", 5000},
		{"$10,000 - $25,000", 17500},
		{"around 1000 to 2000 or even 3000", 2500},
	}
	for _, tc := range cases {
		if got := parseTargetTotal(tc.in); got != tc.want {
			t.Errorf("parseTargetTotal(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGenerateBudgetScalesToTarget(t *testing.T) {
	plan := GenerateBudget(Basics{Type: "Wedding", Attendees: 100, Budget: "$10,000 - $25,000"}, nil)

	if plan.TotalBudget != 17500 {
		t.Fatalf("total_budget = %v, want 17500", plan.TotalBudget)
	}
	sum := 0.0
	pctSum := 0.0
	for _, item := range plan.BudgetItems {
		sum += item.Amount
		pctSum += item.Percentage
	}
	if math.Abs(sum-plan.TotalBudget) > 1.0 {
		t.Fatalf("item amounts sum to %v, total is %v", sum, plan.TotalBudget)
	}
	if math.Abs(pctSum-100) > 0.5 {
		t.Fatalf("percentages sum to %v, want ~100", pctSum)
	}
	if plan.AttendeeCount != 100 {
		t.Fatalf("attendee_count = %d, want 100", plan.AttendeeCount)
	}
	if plan.BudgetRangeUsed != "$10,000 - $25,000" {
		t.Fatalf("budget_range_used = %q", plan.BudgetRangeUsed)
	}
}

func TestGenerateBudgetNoTarget(t *testing.T) {
	plan := GenerateBudget(Basics{Type: "Birthday Party", Attendees: 20}, nil)
	sum := 0.0
	for _, item := range plan.BudgetItems {
		sum += item.Amount
	}
	if math.Abs(sum-plan.TotalBudget) > 1.0 {
		t.Fatalf("item amounts sum to %v, total is %v", sum, plan.TotalBudget)
	}
}

func TestGenerateBudgetUnknownTypeUsesGeneral(t *testing.T) {
	plan := GenerateBudget(Basics{Type: "Hackathon"}, nil)
	if len(plan.BudgetItems) != len(baseCosts["general"]) {
		t.Fatalf("unknown type produced %d items, want the general template's %d",
			len(plan.BudgetItems), len(baseCosts["general"]))
	}
	if plan.AttendeeCount != defaultAttendees {
		t.Fatalf("attendee_count = %d, want default %d", plan.AttendeeCount, defaultAttendees)
	}
}

func TestGenerateScheduleUnknownTypeUsesGeneral(t *testing.T) {
	plan := GenerateSchedule(Basics{Type: "Hackathon"}, nil)
	if !reflect.DeepEqual(plan.ScheduleItems, scheduleTemplates["general"]) {
		t.Fatalf("unknown type did not fall back to general schedule")
	}
	if plan.TotalItems != len(plan.ScheduleItems) {
		t.Fatalf("total_items = %d, have %d items", plan.TotalItems, len(plan.ScheduleItems))
	}
	if plan.EstimatedDuration != "4-6 hours" {
		t.Fatalf("estimated_duration = %q", plan.EstimatedDuration)
	}
}

func TestGenerateTasksCountsAndCategories(t *testing.T) {
	plan := GenerateTasks(Basics{Type: "Wedding"}, nil)
	if plan.TotalTasks != len(plan.TaskList) {
		t.Fatalf("total_tasks = %d, have %d tasks", plan.TotalTasks, len(plan.TaskList))
	}
	if !reflect.DeepEqual(plan.Categories, []string{"Planning", "Day-of"}) {
		t.Fatalf("categories = %v", plan.Categories)
	}
	for _, task := range plan.TaskList {
		if task.Priority != "medium" {
			t.Fatalf("task %q priority = %q, want medium", task.Title, task.Priority)
		}
		if task.Completed {
			t.Fatalf("task %q starts completed", task.Title)
		}
	}
}

func TestGenerateVendorsUnknownTypeEmpty(t *testing.T) {
	plan := GenerateVendors(Basics{Type: "Hackathon"}, "")
	if plan.TotalRecommendations != 0 || len(plan.VendorRecommendations) != 0 {
		t.Fatalf("unknown type should yield no vendors, got %d", plan.TotalRecommendations)
	}
}

func TestGenerateVendorsCategoryFilter(t *testing.T) {
	plan := GenerateVendors(Basics{Type: "Wedding"}, "catering")
	if !reflect.DeepEqual(plan.CategoriesCovered, []string{"catering"}) {
		t.Fatalf("categories_covered = %v", plan.CategoriesCovered)
	}
	for _, v := range plan.VendorRecommendations {
		if v.Category != "Catering" {
			t.Fatalf("vendor %q has category %q", v.Name, v.Category)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	basics := Basics{Type: "Corporate Conference", Attendees: 120, Budget: "$25,000 - $50,000"}
	if !reflect.DeepEqual(GenerateBudget(basics, nil), GenerateBudget(basics, nil)) {
		t.Fatal("budget generation is not deterministic")
	}
	if !reflect.DeepEqual(GenerateVendors(basics, ""), GenerateVendors(basics, "")) {
		t.Fatal("vendor generation is not deterministic")
	}
	if !reflect.DeepEqual(GeneratePlan(basics), GeneratePlan(basics)) {
		t.Fatal("plan generation is not deterministic")
	}
}

func TestGeneratePlanUnknownType(t *testing.T) {
	plan := GeneratePlan(Basics{Name: "Demo", Type: "Hackathon"})
	if plan.EstimatedBudgetRange != planTemplates["general"].budgetRange {
		t.Fatalf("unknown type did not use the general plan template")
	}
	if plan.AttendeeCount != defaultAttendees {
		t.Fatalf("attendee_count = %d, want default", plan.AttendeeCount)
	}
}
