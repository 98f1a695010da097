package mindmap

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywordsFrequencyOrder(t *testing.T) {
	got := ExtractKeywords("solar energy solar panels store energy solar")
	want := []string{"solar", "energy", "panels", "store"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
}

func TestExtractKeywordsSkipsStopwordsAndShortTokens(t *testing.T) {
	got := ExtractKeywords("the cat and an ox in it")
	want := []string{"cat"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
}

func TestExtractKeywordsCapAndTieBreak(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
	}
	got := ExtractKeywords(strings.Join(words, " "))
	if len(got) != 12 {
		t.Fatalf("got %d keywords, want 12", len(got))
	}
	// equal frequency, so alphabetical order decides
	if got[0] != "alpha" || got[11] != "lima" {
		t.Fatalf("tie-break order wrong: %v", got)
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	if got := ExtractKeywords(""); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
