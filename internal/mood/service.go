package mood

import (
	"context"
	"fmt"
	"log"
	"strings"

	"creative-studio/internal/llm"
)

var personaPrompts = map[string]string{
	"parent": "Respond as a caring parent, supportive and nurturing.",
	"mentor": "Respond as a wise mentor, guiding and encouraging.",
	"doctor": "Respond as a therapist, professional and empathetic.",
	"friend": "Respond as a close friend, casual and understanding.",
	"auto":   "Respond appropriately based on the mood.",
}

var cannedReplies = map[string]string{
	"parent": "My dear child, I'm here for you. Tell me what's troubling you.",
	"mentor": "Let's approach this with wisdom. What insights can we gain from this situation?",
	"doctor": "I understand this is difficult. Let's explore your feelings together.",
	"friend": "Hey buddy, I'm here. What's going on?",
	"auto":   "I'm here to listen and support you. How are you feeling?",
}

var defaultActivities = []string{"breathing", "journaling", "grounding"}

var defaultAffirmations = []string{
	"You are capable",
	"This moment will pass",
	"You are not alone",
}

// AnalyzeResult bundles the profile with starter suggestions. Songs are a
// separate call.
type AnalyzeResult struct {
	MoodProfile  Profile  `json:"mood_profile"`
	Activities   []string `json:"activities"`
	Affirmations []string `json:"affirmations"`
	Songs        []Song   `json:"songs"`
}

type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.Disabled()
	}
	return &Service{client: client}
}

// Analyze profiles the text. The profile itself never needs a provider.
func (s *Service) Analyze(text string) AnalyzeResult {
	return AnalyzeResult{
		MoodProfile:  AnalyzeText(text),
		Activities:   defaultActivities,
		Affirmations: defaultAffirmations,
		Songs:        []Song{},
	}
}

// Chat answers a support message in the chosen persona's voice. Provider
// failures fall back to the persona's canned opener.
func (s *Service) Chat(ctx context.Context, message, language, persona string, profile Profile) string {
	system, ok := personaPrompts[persona]
	if !ok {
		system = "Respond empathetically."
	}
	user := fmt.Sprintf("Message: %s\nMood: primary=%s topic=%s sentiment=%s\nLanguage: %s\nRespond in %s.",
		message, profile.PrimaryEmotion, profile.Topic, profile.Sentiment.Label, language, language)
	resp, err := s.client.Generate(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	})
	if err != nil {
		log.Printf("⚠️ Mood chat: provider failed (%v), using canned reply", err)
		if reply, ok := cannedReplies[persona]; ok {
			return reply
		}
		return cannedReplies["auto"]
	}
	return resp.Content
}

// RewriteResult pairs the rewritten text with the profile that drove the
// target emotion.
type RewriteResult struct {
	OriginalText  string  `json:"original_text"`
	MoodProfile   Profile `json:"mood_profile"`
	RewrittenText string  `json:"rewritten_text"`
}

// Rewrite restyles text toward a target emotion. An empty target uses the
// text's own detected primary emotion. Provider failures return the text
// unchanged alongside its profile.
func (s *Service) Rewrite(ctx context.Context, text, targetEmotion string) RewriteResult {
	profile := AnalyzeText(text)
	if targetEmotion == "" {
		targetEmotion = profile.PrimaryEmotion
	}
	result := RewriteResult{OriginalText: text, MoodProfile: profile, RewrittenText: text}

	prompt := fmt.Sprintf("Rewrite this text to sound %s: %s", targetEmotion, text)
	resp, err := s.client.Generate(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}})
	if err != nil {
		log.Printf("⚠️ Mood rewrite: provider failed (%v), returning original text", err)
		return result
	}
	if rewritten := strings.TrimSpace(resp.Content); rewritten != "" {
		result.RewrittenText = rewritten
	}
	return result
}

// Songs returns recommendations for a profile; pure table scoring.
func (s *Service) Songs(profile Profile, language string) []Song {
	if language == "" {
		language = "english"
	}
	return RecommendSongs(profile, language, 5)
}
