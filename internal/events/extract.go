package events

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	quotedRe  = regexp.MustCompile(`"([^"]*)"`)
	integerRe = regexp.MustCompile(`\b\d+\b`)
	budgetRe  = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)

	// Checked in priority order: ISO date first.
	dateRes = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`),
		regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`),
	}
)

// Keyword → canonical event type, checked in order; first match wins.
var typeKeywords = []struct {
	keyword   string
	eventType string
}{
	{"wedding", "Wedding"},
	{"conference", "Corporate Conference"},
	{"birthday", "Birthday Party"},
	{"tech", "Tech Conference"},
	{"music", "Music Festival"},
	{"charity", "Charity Gala"},
	{"college", "College Event"},
	{"sangeet", "Sangeet"},
	{"corporate", "Corporate Conference"},
	{"party", "Birthday Party"},
	{"festival", "Music Festival"},
	{"gala", "Charity Gala"},
}

var venueIndicators = []string{"at", "in", "venue", "location", "ground", "hall"}

// ExtractBasics pulls event fields out of free-form text using first-match
// heuristics. Ambiguous input yields the first lexical match, not the best
// semantic one.
func ExtractBasics(text string) Basics {
	var out Basics
	if strings.TrimSpace(text) == "" {
		return out
	}
	lower := strings.ToLower(text)

	// Date and budget first so their digits don't masquerade as a head count.
	remainder := text
	for _, re := range dateRes {
		if m := re.FindString(text); m != "" {
			out.Date = m
			remainder = strings.Replace(remainder, m, " ", 1)
			break
		}
	}
	if m := budgetRe.FindString(text); m != "" {
		out.Budget = m
		remainder = strings.Replace(remainder, m, " ", 1)
	}

	// Attendees: the largest remaining integer literal.
	best := -1
	for _, m := range integerRe.FindAllString(remainder, -1) {
		if n, err := strconv.Atoi(m); err == nil && n > best {
			best = n
		}
	}
	if best > 0 {
		out.Attendees = best
	}

	for _, tk := range typeKeywords {
		if strings.Contains(lower, tk.keyword) {
			out.Type = tk.eventType
			break
		}
	}

	out.Name = extractName(text)
	out.Venue = extractVenue(text)
	return out
}

// extractName prefers the first double-quoted span; otherwise it takes a run
// of capitalized tokens (or "event"/"party"/"conference") from the start of
// the text, at most four words, stopping at the first token that fits neither
// rule.
func extractName(text string) string {
	if m := quotedRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	words := strings.Fields(text)
	if len(words) == 0 || !startsUpper(words[0]) {
		return ""
	}
	var nameWords []string
	for _, w := range words {
		if len(nameWords) == 4 {
			break
		}
		lw := strings.ToLower(w)
		if startsUpper(w) || lw == "event" || lw == "party" || lw == "conference" {
			nameWords = append(nameWords, w)
		} else {
			break
		}
	}
	return strings.Join(nameWords, " ")
}

// extractVenue returns the title-cased word after the first indicator token,
// if it is longer than two characters.
func extractVenue(text string) string {
	words := strings.Fields(strings.ToLower(text))
	for i, w := range words {
		for _, ind := range venueIndicators {
			if w == ind && i+1 < len(words) {
				candidate := strings.Trim(words[i+1], ".,;:!?")
				if len(candidate) > 2 {
					return titleCase(candidate)
				}
			}
		}
	}
	return ""
}

func startsUpper(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}

func titleCase(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}

// MergeExtracted fills empty Basics fields from values recovered from the
// description. Explicitly provided fields always win.
func MergeExtracted(basics Basics, extracted Basics) Basics {
	if basics.Name == "" {
		basics.Name = extracted.Name
	}
	if basics.Type == "" {
		basics.Type = extracted.Type
	}
	if basics.Date == "" {
		basics.Date = extracted.Date
	}
	if basics.Attendees == 0 {
		basics.Attendees = extracted.Attendees
	}
	if basics.Budget == "" {
		basics.Budget = extracted.Budget
	}
	if basics.Venue == "" {
		basics.Venue = extracted.Venue
	}
	return basics
}

// MissingFields lists the required plan fields absent from basics, in the
// fixed order name, type, date, attendees.
func MissingFields(basics Basics) []string {
	missing := []string{}
	if basics.Name == "" {
		missing = append(missing, "name")
	}
	if basics.Type == "" {
		missing = append(missing, "type")
	}
	if basics.Date == "" {
		missing = append(missing, "date")
	}
	if basics.Attendees == 0 {
		missing = append(missing, "attendees")
	}
	return missing
}
