package certificate

import (
	"context"
	"testing"

	"creative-studio/internal/llm"
)

type stubLLM struct {
	content string
	err     error
}

func (s stubLLM) Generate(_ context.Context, _ []llm.Message) (llm.Response, error) {
	if s.err != nil {
		return llm.Response{}, s.err
	}
	return llm.Response{Content: s.content}, nil
}

func TestGenerateTemplateFallbackByType(t *testing.T) {
	svc := NewService(llm.Disabled())

	result := svc.GenerateTemplate(context.Background(), "Corporate", "", "")
	tpl, ok := result.(Template)
	if !ok {
		t.Fatalf("result is %T, want Template", result)
	}
	if tpl.TemplateName != "Corporate Recognition" {
		t.Fatalf("template = %q", tpl.TemplateName)
	}
}

func TestGenerateTemplateUnknownTypeDefaultsToAcademic(t *testing.T) {
	svc := NewService(llm.Disabled())
	tpl := svc.GenerateTemplate(context.Background(), "hackathon", "", "").(Template)
	if tpl.TemplateName != "Academic Excellence" {
		t.Fatalf("template = %q", tpl.TemplateName)
	}
}

func TestGenerateTemplateModelReplyPassesThrough(t *testing.T) {
	svc := NewService(stubLLM{content: `{"template_name": "Custom", "layout": {}}`})
	result := svc.GenerateTemplate(context.Background(), "event", "gold border", "festive")
	obj, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result is %T, want map", result)
	}
	if obj["template_name"] != "Custom" {
		t.Fatalf("template_name = %v", obj["template_name"])
	}
}

func TestAnalyzeContentFallback(t *testing.T) {
	svc := NewService(llm.Disabled())
	result := svc.AnalyzeContent(context.Background(), "Certificate of X", nil)
	analysis, ok := result.(Analysis)
	if !ok {
		t.Fatalf("result is %T, want Analysis", result)
	}
	if analysis.OverallScore != 8 {
		t.Fatalf("overall_score = %d", analysis.OverallScore)
	}
	if len(analysis.Recommendations) == 0 {
		t.Fatal("no recommendations in fallback analysis")
	}
}

func TestSuggestWordingFallbackByType(t *testing.T) {
	svc := NewService(llm.Disabled())

	result := svc.SuggestWording(context.Background(), "old text", "participation", "")
	suggestion, ok := result.(WordingSuggestion)
	if !ok {
		t.Fatalf("result is %T, want WordingSuggestion", result)
	}
	if suggestion.ImprovedText == "" || len(suggestion.Alternatives) == 0 {
		t.Fatalf("incomplete suggestion: %+v", suggestion)
	}

	// unknown type falls back to the achievement set
	def := svc.SuggestWording(context.Background(), "", "medal", "").(WordingSuggestion)
	if def.ImprovedText != wordingSuggestions["achievement"].ImprovedText {
		t.Fatalf("unknown type did not default: %q", def.ImprovedText)
	}
}

func TestAutofillFallbackDerivesFields(t *testing.T) {
	svc := NewService(llm.Disabled())
	result := svc.Autofill(context.Background(),
		map[string]any{"name": "Asha"},
		map[string]any{"event_name": "Science Fair", "date": "2026-03-01", "organization": "City College"},
		nil)
	out, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result is %T, want map", result)
	}
	if out["recipient_name"] != "Asha" || out["recipient_full_name"] != "Asha" {
		t.Fatalf("recipient fields: %v", out)
	}
	if out["achievement"] != "participation in Science Fair" {
		t.Fatalf("achievement = %v", out["achievement"])
	}
	if out["issue_date"] != "2026-03-01" {
		t.Fatalf("issue_date = %v", out["issue_date"])
	}
	if out["presented_by"] != "City College" {
		t.Fatalf("presented_by = %v", out["presented_by"])
	}
}

func TestAutofillRecipientAchievementWins(t *testing.T) {
	svc := NewService(llm.Disabled())
	out := svc.Autofill(context.Background(),
		map[string]any{"name": "Asha", "achievement": "first place in robotics"},
		map[string]any{"event_name": "Science Fair"},
		nil).(map[string]any)
	if out["achievement"] != "first place in robotics" {
		t.Fatalf("achievement = %v", out["achievement"])
	}
}

func TestAutofillEmptyContextDefaults(t *testing.T) {
	svc := NewService(llm.Disabled())
	out := svc.Autofill(context.Background(), nil, nil, nil).(map[string]any)
	if out["certificate_title"] != "Certificate of Achievement" {
		t.Fatalf("certificate_title = %v", out["certificate_title"])
	}
	if out["presented_by"] != "Organization" {
		t.Fatalf("presented_by = %v", out["presented_by"])
	}
}
