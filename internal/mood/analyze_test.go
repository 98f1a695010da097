package mood

import (
	"reflect"
	"testing"
)

func TestAnalyzeTextPositive(t *testing.T) {
	p := AnalyzeText("I am so happy and excited about my amazing new job")
	if p.PrimaryEmotion != "joy" {
		t.Fatalf("primary = %q, want joy", p.PrimaryEmotion)
	}
	if p.Sentiment.Label != "positive" {
		t.Fatalf("sentiment = %q", p.Sentiment.Label)
	}
	if p.Topic != "work" {
		t.Fatalf("topic = %q, want work", p.Topic)
	}
}

func TestAnalyzeTextNegative(t *testing.T) {
	p := AnalyzeText("I feel sad and lonely, my heart is heartbroken after the breakup")
	if p.PrimaryEmotion != "sadness" {
		t.Fatalf("primary = %q, want sadness", p.PrimaryEmotion)
	}
	if p.Sentiment.Label != "negative" {
		t.Fatalf("sentiment = %q", p.Sentiment.Label)
	}
	if p.Topic != "love" {
		t.Fatalf("topic = %q, want love", p.Topic)
	}
}

func TestAnalyzeTextNeutral(t *testing.T) {
	p := AnalyzeText("The meeting is scheduled for tomorrow")
	if p.PrimaryEmotion != "neutral" {
		t.Fatalf("primary = %q, want neutral", p.PrimaryEmotion)
	}
	if p.Sentiment.Label != "neutral" || p.Sentiment.Score != 0.5 {
		t.Fatalf("sentiment = %+v", p.Sentiment)
	}
	if len(p.SecondaryEmotions) != 0 {
		t.Fatalf("secondary = %v", p.SecondaryEmotions)
	}
}

func TestAnalyzeTextIntent(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"please give me advice on this", "seeking_help"},
		{"I am so frustrated and upset", "venting"},
		{"I just need to relax and find some peace", "seeking_comfort"},
		{"I am thankful and grateful for everything", "expressing_gratitude"},
		{"nothing matches here", "general"},
	}
	for _, tc := range cases {
		if got := AnalyzeText(tc.text).Intent; got != tc.want {
			t.Errorf("intent(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestAnalyzeTextDeterministic(t *testing.T) {
	text := "worried and stressed about my exam, please help"
	if !reflect.DeepEqual(AnalyzeText(text), AnalyzeText(text)) {
		t.Fatal("profile generation is not deterministic")
	}
}

func TestAnalyzeTextSecondaryCap(t *testing.T) {
	p := AnalyzeText("happy sad angry afraid shocked calm worried disgusted")
	if len(p.SecondaryEmotions) > 3 {
		t.Fatalf("secondary emotions = %v, want at most 3", p.SecondaryEmotions)
	}
}
