package mood

import (
	"reflect"
	"testing"
)

func TestRecommendSongsLanguageFilter(t *testing.T) {
	profile := Profile{PrimaryEmotion: "joy", Sentiment: Sentiment{Label: "positive"}}
	for _, song := range RecommendSongs(profile, "hindi", 5) {
		if song.Language != "hindi" {
			t.Fatalf("song %q has language %q", song.Title, song.Language)
		}
	}
	if got := RecommendSongs(profile, "klingon", 5); len(got) != 0 {
		t.Fatalf("unknown language returned %d songs", len(got))
	}
}

func TestRecommendSongsPrimaryEmotionRanksFirst(t *testing.T) {
	profile := Profile{
		PrimaryEmotion: "sadness",
		Intent:         "seeking_comfort",
		Sentiment:      Sentiment{Label: "negative"},
		Intensity:      0.8,
	}
	songs := RecommendSongs(profile, "english", 5)
	if len(songs) == 0 {
		t.Fatal("no songs recommended")
	}
	if !contains(songs[0].EmotionSpectrum, "sadness") {
		t.Fatalf("top song %q does not match primary emotion", songs[0].Title)
	}
}

func TestRecommendSongsLimit(t *testing.T) {
	profile := Profile{PrimaryEmotion: "joy"}
	if got := RecommendSongs(profile, "english", 2); len(got) != 2 {
		t.Fatalf("got %d songs, want 2", len(got))
	}
	// zero limit defaults to 5
	if got := RecommendSongs(profile, "english", 0); len(got) != 5 {
		t.Fatalf("default limit returned %d songs", len(got))
	}
}

func TestRecommendSongsStable(t *testing.T) {
	profile := Profile{PrimaryEmotion: "calm", Topic: "stress", Intensity: 0.2, Sentiment: Sentiment{Label: "neutral"}}
	first := RecommendSongs(profile, "english", 5)
	second := RecommendSongs(profile, "english", 5)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("recommendations are not stable for the same profile")
	}
}
