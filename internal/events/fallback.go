package events

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Deterministic generators for every component. These are total functions:
// any event type outside the tables maps to the "general" template, so the
// planner always produces a usable result without a provider.

const defaultAttendees = 50

type costEntry struct {
	category string
	perHead  float64
}

// Per-attendee base costs by event type. Ordered slices keep generation
// output stable across runs.
var baseCosts = map[string][]costEntry{
	"wedding": {
		{"venue", 150},
		{"catering", 125},
		{"photography", 75},
		{"entertainment", 50},
		{"decorations", 25},
		{"attire", 20},
		{"miscellaneous", 15},
	},
	"corporate conference": {
		{"venue", 200},
		{"catering", 75},
		{"av_equipment", 50},
		{"speakers", 100},
		{"marketing", 30},
		{"miscellaneous", 20},
	},
	"birthday party": {
		{"venue", 20},
		{"catering", 25},
		{"entertainment", 15},
		{"decorations", 10},
		{"party_favors", 8},
		{"cake", 5},
		{"miscellaneous", 5},
	},
	"general": {
		{"venue", 50},
		{"catering", 40},
		{"entertainment", 20},
		{"decorations", 15},
		{"miscellaneous", 10},
	},
}

var digitsRe = regexp.MustCompile(`\d+`)

// parseTargetTotal reads a target budget out of a free-text range like
// "$10,000 - $25,000": the two largest embedded integers are treated as
// min/max and their midpoint wins. A single number is used as-is.
func parseTargetTotal(budgetRange string) float64 {
	cleaned := strings.ReplaceAll(budgetRange, ",", "")
	matches := digitsRe.FindAllString(cleaned, -1)
	if len(matches) == 0 {
		return 0
	}
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		if n, err := strconv.ParseFloat(m, 64); err == nil {
			nums = append(nums, n)
		}
	}
	if len(nums) == 0 {
		return 0
	}
	if len(nums) == 1 {
		return nums[0]
	}
	sort.Float64s(nums)
	minBudget := nums[len(nums)-2]
	maxBudget := nums[len(nums)-1]
	return math.Floor((minBudget + maxBudget) / 2)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// GenerateBudget scales the per-attendee cost table for the event type by
// the attendee count, then rescales uniformly to the target total when the
// budget range yields one. Percentages sum to ~100 whenever the total is
// positive.
func GenerateBudget(basics Basics, _ any) BudgetPlan {
	attendees := basics.Attendees
	if attendees <= 0 {
		attendees = defaultAttendees
	}

	costs, ok := baseCosts[strings.ToLower(basics.Type)]
	if !ok {
		costs = baseCosts["general"]
	}

	targetTotal := parseTargetTotal(basics.Budget)

	initialTotal := 0.0
	for _, c := range costs {
		initialTotal += c.perHead * float64(attendees)
	}

	scale := 1.0
	totalBudget := initialTotal
	if targetTotal > 0 {
		if initialTotal > 0 {
			scale = targetTotal / initialTotal
		}
		totalBudget = targetTotal
	}

	items := make([]BudgetItem, 0, len(costs))
	breakdown := make(map[string]float64, len(costs))
	for _, c := range costs {
		perHead := c.perHead * scale
		amount := perHead * float64(attendees)
		breakdown[c.category] = perHead
		percentage := 0.0
		if totalBudget > 0 {
			percentage = round1(amount / totalBudget * 100)
		}
		label := titleWords(strings.ReplaceAll(c.category, "_", " "))
		items = append(items, BudgetItem{
			Category:   label,
			Name:       label + " Services",
			Amount:     round2(amount),
			Percentage: percentage,
			Notes:      fmt.Sprintf("Estimated cost for %d attendees", attendees),
		})
	}

	recommendations := []string{
		fmt.Sprintf("Budget allocated based on %d expected attendees", attendees),
		"Consider 10-15% contingency for unexpected expenses",
		"Review vendor quotes for actual pricing",
		"Track expenses throughout planning process",
	}
	if basics.Budget != "" {
		recommendations[0] = "Budget planned within range: " + basics.Budget
	}

	return BudgetPlan{
		TotalBudget:     round2(totalBudget),
		BudgetItems:     items,
		CostBreakdown:   breakdown,
		AttendeeCount:   attendees,
		BudgetRangeUsed: basics.Budget,
		Recommendations: recommendations,
	}
}

var scheduleTemplates = map[string][]ScheduleItem{
	"wedding": {
		{"Ceremony", "16:00", "17:00", "Wedding ceremony and vows"},
		{"Cocktail Hour", "17:00", "18:00", "Drinks and appetizers"},
		{"Reception", "18:00", "22:00", "Dinner, dancing, and celebration"},
	},
	"corporate conference": {
		{"Registration", "08:00", "09:00", "Check-in and networking"},
		{"Opening Keynote", "09:00", "10:00", "Welcome and agenda"},
		{"Sessions", "10:00", "12:00", "Main presentations"},
		{"Lunch", "12:00", "13:00", "Networking lunch"},
		{"Afternoon Sessions", "13:00", "16:00", "Workshops and panels"},
		{"Closing", "16:00", "17:00", "Wrap-up and next steps"},
	},
	"birthday party": {
		{"Arrival & Games", "14:00", "16:00", "Welcome and activities"},
		{"Cake Cutting", "16:00", "17:00", "Birthday celebration"},
		{"Party Time", "17:00", "19:00", "Games and fun"},
	},
	"general": {
		{"Setup", "08:00", "09:00", "Final preparations"},
		{"Welcome", "09:00", "10:00", "Opening ceremony"},
		{"Main Activities", "10:00", "16:00", "Event activities"},
		{"Break", "16:00", "17:00", "Refreshments"},
		{"Closing", "17:00", "18:00", "Wrap-up"},
	},
}

func GenerateSchedule(basics Basics, _ any) SchedulePlan {
	items, ok := scheduleTemplates[strings.ToLower(basics.Type)]
	if !ok {
		items = scheduleTemplates["general"]
	}
	duration := basics.Duration
	if duration == "" {
		duration = "4-6 hours"
	}
	return SchedulePlan{
		EventType:         basics.Type,
		ScheduleItems:     items,
		TotalItems:        len(items),
		EstimatedDuration: duration,
		ScheduleNotes: []string{
			"Schedule is flexible and can be adjusted based on specific needs",
			"Allow buffer time between activities for transitions",
			"Consider guest arrival patterns when setting start times",
			"Include contingency time for unexpected delays",
		},
	}
}

type taskCategory struct {
	name  string
	tasks []string
}

var taskTemplates = map[string][]taskCategory{
	"wedding": {
		{"Planning", []string{
			"Book venue and date", "Send save-the-dates", "Choose wedding party",
			"Select wedding attire", "Book photographer/videographer",
			"Choose florist and flowers", "Select wedding cake", "Book caterer",
			"Choose music/DJ", "Send invitations",
		}},
		{"Day-of", []string{
			"Setup ceremony decorations", "Setup reception decorations",
			"Coordinate with vendors", "Manage timeline", "Take photos",
			"Serve food and drinks", "Cut the cake", "First dance",
			"Bouquet toss", "Send-off",
		}},
	},
	"corporate conference": {
		{"Planning", []string{
			"Book conference venue", "Create agenda and schedule",
			"Book keynote speakers", "Arrange catering", "Setup registration system",
			"Book AV equipment", "Create marketing materials",
			"Arrange transportation", "Book accommodation blocks",
			"Setup networking events",
		}},
		{"Logistics", []string{
			"Setup registration desk", "Welcome attendees", "Manage sessions",
			"Coordinate breaks", "Handle AV issues", "Facilitate networking",
			"Collect feedback", "Wrap-up and thank you",
		}},
	},
	"birthday party": {
		{"Planning", []string{
			"Choose theme and decorations", "Send invitations", "Book venue",
			"Order cake", "Plan games and activities", "Arrange food and drinks",
			"Buy party favors", "Plan entertainment",
		}},
		{"Day-of", []string{
			"Setup decorations", "Welcome guests", "Organize games", "Serve food",
			"Cut the cake", "Open presents", "Clean up",
		}},
	},
	"general": {
		{"Planning", []string{
			"Define event objectives", "Set budget", "Choose date and venue",
			"Create guest list", "Send invitations", "Arrange catering",
			"Plan activities", "Book entertainment",
		}},
		{"Execution", []string{
			"Setup venue", "Welcome guests", "Manage activities",
			"Serve food/drinks", "Coordinate vendors", "Take photos", "Clean up",
		}},
	},
}

func GenerateTasks(basics Basics, _ any) TaskPlan {
	categories, ok := taskTemplates[strings.ToLower(basics.Type)]
	if !ok {
		categories = taskTemplates["general"]
	}
	var tasks []Task
	var names []string
	for _, cat := range categories {
		names = append(names, cat.name)
		for _, title := range cat.tasks {
			tasks = append(tasks, Task{Title: title, Category: cat.name, Priority: "medium"})
		}
	}
	return TaskPlan{
		EventType:  basics.Type,
		TaskList:   tasks,
		TotalTasks: len(tasks),
		Categories: names,
		TaskNotes: []string{
			"Tasks are organized by planning phase and priority",
			"Mark tasks complete as you finish them",
			"Set reminders for time-sensitive tasks",
			"Delegate tasks to team members when possible",
		},
	}
}

type vendorEntry struct {
	name       string
	rating     float64
	priceRange string
	contact    string
}

type vendorCategory struct {
	name    string
	vendors []vendorEntry
}

var vendorTables = map[string][]vendorCategory{
	"wedding": {
		{"venue", []vendorEntry{
			{"Grand Ballroom", 4.8, "$5000-$15000", "info@grandballroom.com"},
			{"Garden Estate", 4.7, "$8000-$20000", "events@gardenestate.com"},
		}},
		{"catering", []vendorEntry{
			{"Elegant Cuisine", 4.9, "$75-$150/person", "bookings@elegantcuisine.com"},
			{"Gourmet Catering", 4.8, "$85-$160/person", "info@gourmetcatering.com"},
		}},
		{"photography", []vendorEntry{
			{"Forever Moments", 4.7, "$2000-$5000", "hello@forevermoments.com"},
			{"Memory Captures", 4.6, "$1800-$4500", "book@memorycaptures.com"},
		}},
	},
	"corporate conference": {
		{"venue", []vendorEntry{
			{"Tech Conference Center", 4.7, "$3000-$8000", "events@techcenter.com"},
			{"Business Plaza", 4.5, "$2500-$6000", "rentals@businessplaza.com"},
		}},
		{"catering", []vendorEntry{
			{"Corporate Catering Co", 4.8, "$45-$85/person", "corporate@catco.com"},
			{"Executive Dining", 4.6, "$50-$90/person", "events@executivedining.com"},
		}},
		{"av_equipment", []vendorEntry{
			{"Pro AV Solutions", 4.6, "$1000-$3000", "rentals@proav.com"},
			{"Tech Presentations", 4.5, "$800-$2500", "info@techpresentations.com"},
		}},
	},
	"birthday party": {
		{"venue", []vendorEntry{
			{"Fun Zone Party Center", 4.4, "$500-$1500", "parties@funzone.com"},
			{"Adventure Park", 4.3, "$300-$1000", "events@adventurepark.com"},
		}},
		{"catering", []vendorEntry{
			{"Kids Cuisine", 4.6, "$15-$35/person", "orders@kidscuisine.com"},
			{"Party Foods R Us", 4.4, "$12-$30/person", "catering@partyfoodsrus.com"},
		}},
		{"entertainment", []vendorEntry{
			{"Magic Mike Entertainment", 4.8, "$300-$600", "book@magicmike.com"},
			{"Party Animators", 4.5, "$250-$500", "fun@partyanimators.com"},
		}},
	},
}

// GenerateVendors returns the vendor table for the event type, optionally
// narrowed to one category. Unknown types yield an empty recommendation set
// rather than an error.
func GenerateVendors(basics Basics, category string) VendorPlan {
	table := vendorTables[strings.ToLower(basics.Type)]

	var recommendations []Vendor
	var covered []string
	for _, cat := range table {
		if category != "" && cat.name != category {
			continue
		}
		covered = append(covered, cat.name)
		label := titleWords(strings.ReplaceAll(cat.name, "_", " "))
		for _, v := range cat.vendors {
			recommendations = append(recommendations, Vendor{
				Category:   label,
				Name:       v.name,
				Type:       label + " Services",
				Rating:     v.rating,
				PriceRange: v.priceRange,
				Contact:    v.contact,
				Phone:      "(555) 123-4567",
				Status:     "pending",
				Notes:      fmt.Sprintf("Recommended %s vendor for %s events", cat.name, basics.Type),
			})
		}
	}

	return VendorPlan{
		EventType:             basics.Type,
		VendorRecommendations: recommendations,
		TotalRecommendations:  len(recommendations),
		CategoriesCovered:     covered,
		RecommendationNotes: []string{
			"Vendors selected based on event type and positive reviews",
			"Contact vendors directly to check availability and get quotes",
			"Consider location and transportation logistics",
			"Read reviews and check references before booking",
		},
	}
}

type planTemplate struct {
	objectives        []string
	keyConsiderations []string
	themes            []string
	budgetRange       string
}

var planTemplates = map[string]planTemplate{
	"wedding": {
		objectives: []string{
			"Create unforgettable celebration for couple and guests",
			"Ensure smooth coordination of all wedding elements",
			"Capture memories through professional photography/videography",
			"Provide exceptional catering and entertainment",
		},
		keyConsiderations: []string{
			"Guest list management and RSVPs",
			"Ceremony and reception venue coordination",
			"Wedding party responsibilities",
			"Timeline management for wedding day",
			"Vendor coordination and contracts",
		},
		themes:      []string{"Romantic Garden", "Elegant Ballroom", "Rustic Barn", "Beach Wedding"},
		budgetRange: "$15000-$50000",
	},
	"corporate conference": {
		objectives: []string{
			"Facilitate knowledge sharing and networking",
			"Showcase company innovations and products",
			"Build relationships with clients and partners",
			"Provide valuable learning opportunities",
		},
		keyConsiderations: []string{
			"Speaker lineup and session topics",
			"AV equipment and technical requirements",
			"Registration and attendee management",
			"Sponsorship opportunities",
			"Post-event follow-up and content sharing",
		},
		themes:      []string{"Innovation Summit", "Industry Leadership", "Tech Conference", "Business Growth"},
		budgetRange: "$25000-$100000",
	},
	"birthday party": {
		objectives: []string{
			"Create fun and memorable celebration",
			"Ensure age-appropriate entertainment",
			"Capture special moments",
			"Provide delicious food and cake",
		},
		keyConsiderations: []string{
			"Age-appropriate activities and games",
			"Guest list and invitations",
			"Theme and decorations",
			"Food allergies and preferences",
			"Party favors and goody bags",
		},
		themes:      []string{"Superhero Adventure", "Princess Party", "Space Explorer", "Under the Sea"},
		budgetRange: "$500-$2000",
	},
	"general": {
		objectives: []string{
			"Create engaging and successful event",
			"Ensure positive attendee experience",
			"Achieve event goals and objectives",
			"Stay within budget constraints",
		},
		keyConsiderations: []string{
			"Clear event purpose and goals",
			"Target audience understanding",
			"Venue selection and logistics",
			"Marketing and promotion",
			"Event execution and follow-up",
		},
		themes:      []string{"Professional", "Casual", "Creative", "Traditional"},
		budgetRange: "$1000-$10000",
	},
}

func GeneratePlan(basics Basics) PlanPreview {
	tpl, ok := planTemplates[strings.ToLower(basics.Type)]
	if !ok {
		tpl = planTemplates["general"]
	}
	attendees := basics.Attendees
	if attendees == 0 {
		attendees = defaultAttendees
	}
	duration := basics.Duration
	if duration == "" {
		duration = "4-6 hours"
	}
	return PlanPreview{
		EventName:            basics.Name,
		EventType:            basics.Type,
		Objectives:           tpl.objectives,
		KeyConsiderations:    tpl.keyConsiderations,
		RecommendedThemes:    tpl.themes,
		EstimatedBudgetRange: tpl.budgetRange,
		AttendeeCount:        attendees,
		SuggestedDuration:    duration,
		PlanningTimeline: []string{
			"1-2 months out: Secure venue and key vendors",
			"1 month out: Finalize guest list and send invitations",
			"2 weeks out: Confirm all arrangements and logistics",
			"1 week out: Final headcount and last-minute preparations",
			"Day of: Execute plan and enjoy the event!",
		},
	}
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ")
}
