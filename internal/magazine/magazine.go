package magazine

import (
	"context"
	"fmt"
	"log"
	"strings"

	"creative-studio/internal/llm"
)

const defaultTitle = "The Campus Chronicle"

// Request carries the article brief. Field names follow the editor's form.
type Request struct {
	MagTitle    string `json:"magTitle"`
	EventName   string `json:"eventName"`
	RawData     string `json:"rawData"`
	ArticleType string `json:"articleType"`
	MagIssue    string `json:"magIssue"`
	UserPrompt  string `json:"userPrompt"`
}

// Article is the six-part magazine piece the front-end lays out.
type Article struct {
	SummaryThick string `json:"summary_thick"`
	SummaryThin  string `json:"summary_thin"`
	MainBody     string `json:"main_body"`
	PullQuote    string `json:"pull_quote"`
	Caption1     string `json:"caption1"`
	Caption2     string `json:"caption2"`
}

var expectedKeys = []string{"summary_thick", "summary_thin", "main_body", "pull_quote", "caption1", "caption2"}

// Service writes magazine articles. A model reply is passed through only
// when it carries every expected key; everything else is synthesized from
// the request fields.
type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.Disabled()
	}
	return &Service{client: client}
}

func buildPrompt(req Request) []llm.Message {
	title := req.MagTitle
	if title == "" {
		title = defaultTitle
	}
	userPrompt := req.UserPrompt
	if userPrompt == "" {
		userPrompt = "N/A"
	}
	user := fmt.Sprintf(`Act as a professional Magazine Feature Writer and Editor for a college publication titled '%s'.

Generate a concise 2-paragraph summary (first "thick" paragraph and second "thin" concluding paragraph), a 400-word feature article, two short photo captions, and one bold impactful pull-quote. Use an upbeat, encouraging, and professional tone. Include any raw facts provided below and adapt names/dates as given.

Event: %s
Raw: %s
Article type: %s
Issue: %s
User instructions: %s

Format your output in JSON with keys: summary_thick, summary_thin, main_body, pull_quote, caption1, caption2.`,
		title, req.EventName, req.RawData, req.ArticleType, req.MagIssue, userPrompt)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: "MagazineWriter"},
		{Role: llm.RoleUser, Content: user},
	}
}

// Generate returns either the model's article object or a synthesized one.
func (s *Service) Generate(ctx context.Context, req Request) any {
	resp, err := s.client.Generate(ctx, buildPrompt(req))
	if err != nil {
		log.Printf("⚠️ Magazine generate: provider failed (%v), synthesizing article", err)
		return synthesize(req)
	}
	obj := llm.ForceObject(resp.Content)
	if obj != nil && hasAllKeys(obj) {
		return obj
	}
	return synthesize(req)
}

func hasAllKeys(obj map[string]any) bool {
	for _, k := range expectedKeys {
		if _, ok := obj[k]; !ok {
			return false
		}
	}
	return true
}

// synthesize writes a readable article from the request fields alone.
func synthesize(req Request) Article {
	event := req.EventName
	issue := req.MagIssue
	articleType := req.ArticleType
	if articleType == "" {
		articleType = "Feature Article"
	}
	notes := strings.TrimSpace(req.RawData)

	var thick string
	if notes != "" {
		if r := []rune(notes); len(r) > 220 {
			notes = string(r[:220])
		}
		thick = fmt.Sprintf("%s brought together students and faculty in %s, blending energy and purpose into a memorable %s. Key details: %s",
			event, issue, strings.ToLower(articleType), notes)
	} else {
		thick = fmt.Sprintf("%s brought together students and faculty in %s, delivering a memorable %s.",
			event, issue, strings.ToLower(articleType))
	}
	thin := fmt.Sprintf("In summary - %s showcased collaboration, creativity, and campus pride.", event)
	mainBody := fmt.Sprintf("%s\n\nOrganizers coordinated logistics, schedules, and outreach; volunteers kept the experience smooth and welcoming. "+
		"Judges highlighted originality and impact across submissions. The showcase encouraged interdisciplinary work and gave students a platform to shine.\n\n"+
		"Looking ahead, lessons from %s will inform future editions, building stronger partnerships and broader participation.", thick, event)

	return Article{
		SummaryThick: thick,
		SummaryThin:  thin,
		MainBody:     mainBody,
		PullQuote:    fmt.Sprintf("%q", event),
		Caption1:     "Moments from the event floor as teams present.",
		Caption2:     "Judges confer during the final showcase round.",
	}
}
