package certificate

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"creative-studio/internal/llm"
)

// Service covers certificate design generation, content analysis, wording
// suggestions and field auto-fill. Model paths degrade to the template
// tables; results are always usable JSON values.
type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.Disabled()
	}
	return &Service{client: client}
}

func (s *Service) ask(ctx context.Context, system, user string) map[string]any {
	resp, err := s.client.Generate(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	})
	if err != nil {
		return nil
	}
	return llm.ForceObject(resp.Content)
}

// GenerateTemplate proposes a certificate template for the event type.
func (s *Service) GenerateTemplate(ctx context.Context, eventType, requirements, theme string) any {
	if theme == "" {
		theme = "professional"
	}
	system := "You are an expert certificate designer. Generate professional certificate templates with appropriate layouts, colors, and elements."
	user := fmt.Sprintf(`Generate a certificate template design for the following:

Event Type: %s
Requirements: %s
Theme: %s

Return JSON with:
- template_name: Creative name for the template
- layout: Object with background, border, text_styles, elements array
- color_scheme: Primary, secondary, accent colors
- suggested_elements: Array of certificate elements (title, recipient, date, signature, etc.)
- description: Brief description of the template style`, eventType, requirements, theme)

	if obj := s.ask(ctx, system, user); obj != nil {
		return obj
	}
	tpl, ok := templates[strings.ToLower(eventType)]
	if !ok {
		tpl = templates["academic"]
	}
	log.Printf("⚠️ Certificate generate: using template %q", tpl.TemplateName)
	return tpl
}

// AnalyzeContent reviews certificate text and design.
func (s *Service) AnalyzeContent(ctx context.Context, certificateText string, currentDesign map[string]any) any {
	design, _ := json.Marshal(currentDesign)
	system := "You are an expert certificate designer and content analyst. Provide detailed analysis and improvement suggestions."
	user := fmt.Sprintf(`Analyze this certificate content and design:

Certificate Text:
%s

Current Design: %s

Provide analysis covering:
- Content clarity and completeness
- Design effectiveness
- Professional appearance
- Suggested improvements
- Missing elements

Return JSON with analysis sections.`, certificateText, design)

	if obj := s.ask(ctx, system, user); obj != nil {
		return obj
	}
	return fallbackAnalysis
}

// SuggestWording improves certificate phrasing for the given type and tone.
func (s *Service) SuggestWording(ctx context.Context, currentText, certificateType, tone string) any {
	if certificateType == "" {
		certificateType = "achievement"
	}
	if tone == "" {
		tone = "professional"
	}
	system := fmt.Sprintf("You are an expert certificate writer. Suggest professional, %s wording for certificates.", tone)
	user := fmt.Sprintf(`Improve the wording for this %s certificate:

Current Text:
%s

Certificate Type: %s
Desired Tone: %s

Provide:
- Improved full text
- Specific wording suggestions
- Alternative phrasings
- Tone adjustments`, certificateType, currentText, certificateType, tone)

	if obj := s.ask(ctx, system, user); obj != nil {
		return obj
	}
	suggestion, ok := wordingSuggestions[strings.ToLower(certificateType)]
	if !ok {
		suggestion = wordingSuggestions["achievement"]
	}
	return suggestion
}

// Autofill derives field values from recipient and event context. The
// fallback copies known context keys into the conventional template fields.
func (s *Service) Autofill(ctx context.Context, recipientInfo, eventContext map[string]any, templateFields []string) any {
	recipient, _ := json.Marshal(recipientInfo)
	event, _ := json.Marshal(eventContext)
	fields, _ := json.Marshal(templateFields)
	system := "You are an expert at filling certificate templates with appropriate information based on context."
	user := fmt.Sprintf(`Auto-fill this certificate template:

Recipient Info: %s
Event Context: %s
Template Fields: %s

Provide appropriate values for each field based on the context and recipient information.`, recipient, event, fields)

	if obj := s.ask(ctx, system, user); obj != nil {
		return obj
	}

	out := map[string]any{}
	if name, ok := stringValue(recipientInfo, "name"); ok {
		out["recipient_name"] = name
		if full, ok := stringValue(recipientInfo, "full_name"); ok {
			out["recipient_full_name"] = full
		} else {
			out["recipient_full_name"] = name
		}
	}
	if date, ok := stringValue(eventContext, "date"); ok {
		out["event_date"] = date
		if issue, ok := stringValue(eventContext, "issue_date"); ok {
			out["issue_date"] = issue
		} else {
			out["issue_date"] = date
		}
	}
	if eventName, ok := stringValue(eventContext, "event_name"); ok {
		out["event_name"] = eventName
		out["achievement"] = "participation in " + eventName
	}
	if achievement, ok := stringValue(recipientInfo, "achievement"); ok {
		out["achievement"] = achievement
	}
	if org, ok := stringValue(eventContext, "organization"); ok {
		out["organization"] = org
		out["issuer"] = org
	}
	if title, ok := stringValue(eventContext, "certificate_title"); ok {
		out["certificate_title"] = title
	} else {
		out["certificate_title"] = "Certificate of Achievement"
	}
	if presenter, ok := stringValue(eventContext, "presented_by"); ok {
		out["presented_by"] = presenter
	} else if org, ok := stringValue(eventContext, "organization"); ok {
		out["presented_by"] = org
	} else {
		out["presented_by"] = "Organization"
	}
	return out
}

func stringValue(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
