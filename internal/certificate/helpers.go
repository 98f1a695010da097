package certificate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"creative-studio/internal/llm"
)

// Lightweight editor hooks. These answer instantly without a provider so
// the certificate editor keeps working offline.

type FieldSuggestion struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

func SuggestFields(title, description string) FieldSuggestion {
	out := FieldSuggestion{
		Title:       strings.TrimSpace(title),
		Subtitle:    "This certifies that",
		Description: strings.TrimSpace(description),
	}
	if out.Title == "" {
		out.Title = "Certificate of Achievement"
	}
	if out.Description == "" {
		out.Description = "For outstanding performance and dedication."
	}
	return out
}

type AutofillFields struct {
	Recipient      string `json:"recipient"`
	Date           string `json:"date"`
	SignatureLabel string `json:"signatureLabel"`
}

// AutofillState picks a recipient name out of the editor state under any of
// its conventional keys. An empty defaultDate means today.
func AutofillState(state map[string]any, defaultDate string) AutofillFields {
	recipient := "Recipient Name"
	for _, key := range []string{"recipient", "name", "student_name"} {
		if v, ok := stringValue(state, key); ok {
			recipient = v
			break
		}
	}
	if defaultDate == "" {
		defaultDate = time.Now().Format("January 2, 2006")
	}
	return AutofillFields{
		Recipient:      recipient,
		Date:           defaultDate,
		SignatureLabel: "Authorized Signature",
	}
}

// DesignSuggestions reads the canvas dimensions from the editor state and
// returns layout advice for the detected orientation.
func DesignSuggestions(state map[string]any) []string {
	width, height := 2480.0, 1754.0
	if canvas, ok := state["canvas"].(map[string]any); ok {
		if w, ok := canvas["width"].(float64); ok {
			width = w
		}
		if h, ok := canvas["height"].(float64); ok {
			height = h
		}
	}
	suggestions := []string{
		"Use a bold, readable font for the recipient's name (e.g., 60-72px).",
		"Keep generous margins (40-60px) so the border has breathing room.",
		"Align the main title and recipient name centrally for balance.",
	}
	if width >= height {
		suggestions = append(suggestions, "Landscape layout detected - place logos and seals in the corners.")
	} else {
		suggestions = append(suggestions, "Portrait layout - use more vertical spacing between sections.")
	}
	return suggestions
}

type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

type Report struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

var toneHints = []struct {
	keyword string
	hint    string
}{
	{"corporate", "Use a formal, professional tone. Center-align titles and key sections. Use structured, business-like language."},
	{"modern", "Use a clean, minimal tone. Left-align text for a modern look. Keep it concise and contemporary."},
	{"academic", "Use formal academic language. Center-align titles, left-align body text. Include citations if relevant."},
	{"pastel", "Use a soft, elegant tone. Center-align for balance. Gentle and approachable language."},
}

func toneHint(template string) string {
	lower := strings.ToLower(template)
	for _, th := range toneHints {
		if strings.Contains(lower, th.keyword) {
			return th.hint
		}
	}
	return "Adapt to a general professional theme with center-aligned titles."
}

// AnalyzeText splits report text into a title plus heading/content sections,
// via the model when available and a line parser otherwise.
func (s *Service) AnalyzeText(ctx context.Context, text, template string) Report {
	hint := ""
	if template != "" {
		hint = toneHint(template)
	}
	user := fmt.Sprintf(`Analyze the following activity report text. Extract the main title and break it down into logical sections with headings and content.

%s

Text:
%s

Respond in JSON format:
{
  "title": "Main Title",
  "sections": [
    {"heading": "Section Heading", "content": "Section content here."}
  ]
}`, hint, text)

	resp, err := s.client.Generate(ctx, []llm.Message{{Role: llm.RoleUser, Content: user}})
	if err == nil {
		if obj := llm.ForceObject(resp.Content); obj != nil {
			if report, ok := reportFromObject(obj); ok {
				return report
			}
		}
	}
	return parseReport(text)
}

func reportFromObject(obj map[string]any) (Report, bool) {
	title, _ := obj["title"].(string)
	raw, ok := obj["sections"].([]any)
	if title == "" || !ok {
		return Report{}, false
	}
	var sections []Section
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		heading, _ := m["heading"].(string)
		content, _ := m["content"].(string)
		if heading != "" {
			sections = append(sections, Section{Heading: heading, Content: content})
		}
	}
	if len(sections) == 0 {
		return Report{}, false
	}
	return Report{Title: title, Sections: sections}, true
}

var numberedRe = regexp.MustCompile(`^\d+\.`)

// parseReport treats numbered, all-caps, or short period-free lines as
// headings and accumulates the rest as their content.
func parseReport(text string) Report {
	var sections []Section
	var heading string
	var content []string

	flush := func() {
		if heading != "" && len(content) > 0 {
			sections = append(sections, Section{Heading: heading, Content: strings.Join(content, " ")})
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		isHeading := numberedRe.MatchString(line) ||
			line == strings.ToUpper(line) ||
			(len(line) < 50 && !strings.HasSuffix(line, "."))
		if isHeading {
			flush()
			heading = line
			content = nil
		} else {
			content = append(content, line)
		}
	}
	flush()

	if len(sections) == 0 {
		sections = []Section{{Heading: "Introduction", Content: text}}
	}
	return Report{Title: sections[0].Heading, Sections: sections}
}
