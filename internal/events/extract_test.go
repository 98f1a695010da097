package events

import (
	"reflect"
	"testing"
)

func TestExtractBasicsFullText(t *testing.T) {
	text := `Sangeet "Priya's Big Day" at college ground for 200 guests on 2025-12-15 budget $10,000`
	got := ExtractBasics(text)

	if got.Attendees != 200 {
		t.Fatalf("attendees = %d, want 200", got.Attendees)
	}
	if got.Date != "2025-12-15" {
		t.Fatalf("date = %q, want 2025-12-15", got.Date)
	}
	if got.Budget != "$10,000" {
		t.Fatalf("budget = %q, want $10,000", got.Budget)
	}
	if got.Name != "Priya's Big Day" {
		t.Fatalf("name = %q, want Priya's Big Day", got.Name)
	}
	if got.Venue != "College" {
		t.Fatalf("venue = %q, want College", got.Venue)
	}
}

func TestExtractBasicsEmpty(t *testing.T) {
	got := ExtractBasics("   ")
	if !reflect.DeepEqual(got, Basics{}) {
		t.Fatalf("expected zero basics, got %+v", got)
	}
}

func TestExtractDateFormats(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"party on 2026-01-31 downtown", "2026-01-31"},
		{"party on 01/31/2026 downtown", "01/31/2026"},
		{"party on 01-31-2026 downtown", "01-31-2026"},
		{"party with no date", ""},
	}
	for _, tc := range cases {
		if got := ExtractBasics(tc.text).Date; got != tc.want {
			t.Errorf("ExtractBasics(%q).Date = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractBasicsDateDigitsNotAttendees(t *testing.T) {
	// The year in the date must not win the head-count scan.
	got := ExtractBasics("Reunion for 40 people on 2025-12-15")
	if got.Attendees != 40 {
		t.Fatalf("attendees = %d, want 40", got.Attendees)
	}
}

func TestExtractNameQuotedWins(t *testing.T) {
	got := ExtractBasics(`Grand Opening "Launch Night" conference`)
	if got.Name != "Launch Night" {
		t.Fatalf("name = %q, want Launch Night", got.Name)
	}
}

func TestExtractNameCapitalizedRun(t *testing.T) {
	got := ExtractBasics("Summer Music Festival Downtown with food trucks")
	if got.Name != "Summer Music Festival Downtown" {
		t.Fatalf("name = %q", got.Name)
	}
}

func TestMergeExtractedExplicitWins(t *testing.T) {
	explicit := Basics{Name: "Given", Attendees: 10}
	extracted := Basics{Name: "Derived", Type: "Wedding", Attendees: 500}
	got := MergeExtracted(explicit, extracted)
	if got.Name != "Given" || got.Attendees != 10 {
		t.Fatalf("explicit fields overwritten: %+v", got)
	}
	if got.Type != "Wedding" {
		t.Fatalf("empty field not filled: %+v", got)
	}
}

func TestMissingFields(t *testing.T) {
	got := MissingFields(Basics{Name: "A", Type: "Conference"})
	want := []string{"date", "attendees"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingFields = %v, want %v", got, want)
	}

	if got := MissingFields(Basics{Name: "A", Type: "B", Date: "2026-01-01", Attendees: 1}); len(got) != 0 {
		t.Fatalf("expected no missing fields, got %v", got)
	}
}
