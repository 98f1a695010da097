package events

// Basics holds the user-supplied event description. Every field except name
// and type is optional; prompts render missing values as "Not specified"
// rather than omitting them.
type Basics struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Date        string `json:"date,omitempty"`
	Attendees   int    `json:"attendees,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Venue       string `json:"venue,omitempty"`
	Location    string `json:"location,omitempty"`
	Theme       string `json:"theme,omitempty"`
}

// Event is the persisted planning document. Components maps a component name
// (budget/schedule/tasks/vendors) to its last generated result; there is no
// history, the latest generation always wins.
type Event struct {
	ID         string         `json:"id"`
	Basics     Basics         `json:"basics"`
	Preview    map[string]any `json:"preview,omitempty"`
	Components map[string]any `json:"components"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at,omitempty"`
}

// EventSummary is the list-view projection of an Event.
type EventSummary struct {
	ID      string         `json:"id"`
	Basics  Basics         `json:"basics"`
	Preview map[string]any `json:"preview"`
}

const (
	ComponentBudget   = "budget"
	ComponentSchedule = "schedule"
	ComponentTasks    = "tasks"
	ComponentVendors  = "vendors"
)

func ValidComponent(name string) bool {
	switch name {
	case ComponentBudget, ComponentSchedule, ComponentTasks, ComponentVendors:
		return true
	}
	return false
}

type BudgetItem struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Notes      string  `json:"notes"`
}

type BudgetPlan struct {
	TotalBudget     float64            `json:"total_budget"`
	BudgetItems     []BudgetItem       `json:"budget_items"`
	CostBreakdown   map[string]float64 `json:"cost_breakdown"`
	AttendeeCount   int                `json:"attendee_count"`
	BudgetRangeUsed string             `json:"budget_range_used"`
	Recommendations []string           `json:"recommendations"`
}

type ScheduleItem struct {
	Title       string `json:"title"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

type SchedulePlan struct {
	EventType         string         `json:"event_type"`
	ScheduleItems     []ScheduleItem `json:"schedule_items"`
	TotalItems        int            `json:"total_items"`
	EstimatedDuration string         `json:"estimated_duration"`
	ScheduleNotes     []string       `json:"schedule_notes"`
}

type Task struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
}

type TaskPlan struct {
	EventType  string   `json:"event_type"`
	TaskList   []Task   `json:"task_list"`
	TotalTasks int      `json:"total_tasks"`
	Categories []string `json:"categories"`
	TaskNotes  []string `json:"task_notes"`
}

type Vendor struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Rating     float64 `json:"rating"`
	PriceRange string  `json:"price_range"`
	Contact    string  `json:"contact"`
	Phone      string  `json:"phone"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
}

type VendorPlan struct {
	EventType             string   `json:"event_type"`
	VendorRecommendations []Vendor `json:"vendor_recommendations"`
	TotalRecommendations  int      `json:"total_recommendations"`
	CategoriesCovered     []string `json:"categories_covered"`
	RecommendationNotes   []string `json:"recommendation_notes"`
}

type PlanPreview struct {
	EventName            string   `json:"event_name"`
	EventType            string   `json:"event_type"`
	Objectives           []string `json:"objectives"`
	KeyConsiderations    []string `json:"key_considerations"`
	RecommendedThemes    []string `json:"recommended_themes"`
	EstimatedBudgetRange string   `json:"estimated_budget_range"`
	AttendeeCount        int      `json:"attendee_count"`
	SuggestedDuration    string   `json:"suggested_duration"`
	PlanningTimeline     []string `json:"planning_timeline"`
}
