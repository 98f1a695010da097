package mood

import (
	"sort"
	"strings"
)

// Mood profiling is keyword-driven: lexicon hits per emotion produce the
// ranked emotion list, word polarity counts produce sentiment, and topic and
// intent come from first-match keyword tables.

type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type EmotionScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Profile is recomputed from the input text on every request; nothing is
// stored.
type Profile struct {
	PrimaryEmotion    string         `json:"primary_emotion"`
	SecondaryEmotions []string       `json:"secondary_emotions"`
	Intent            string         `json:"intent"`
	Sentiment         Sentiment      `json:"sentiment"`
	Topic             string         `json:"topic"`
	Intensity         float64        `json:"intensity"`
	AllEmotions       []EmotionScore `json:"all_emotions"`
}

type lexiconEntry struct {
	emotion  string
	keywords []string
}

// Primary emotions first; ties resolve to the earlier entry.
var emotionLexicon = []lexiconEntry{
	{"joy", []string{"happy", "joy", "excited", "grateful", "optimistic", "peaceful", "wonderful", "amazing", "great"}},
	{"sadness", []string{"sad", "down", "lonely", "cry", "empty", "heartbroken", "depressed", "miserable"}},
	{"anger", []string{"angry", "mad", "furious", "irritated", "frustrated", "hate"}},
	{"fear", []string{"afraid", "fear", "terrified", "unsafe", "scared", "panic"}},
	{"disgust", []string{"disgusted", "gross", "repulsed"}},
	{"surprise", []string{"shocked", "surprised", "unexpected"}},
	{"anxious", []string{"worried", "anxious", "nervous", "tense", "stressed", "overwhelmed"}},
	{"calm", []string{"calm", "relaxed", "grounded"}},
}

var positiveWords = []string{"happy", "good", "great", "excellent", "wonderful", "amazing", "love", "joy", "excited"}
var negativeWords = []string{"sad", "bad", "terrible", "awful", "hate", "angry", "depressed", "anxious", "worried", "stressed"}

type keywordTable struct {
	label    string
	keywords []string
}

// Checked in order; first table with a hit wins.
var topicTables = []keywordTable{
	{"love", []string{"love", "romantic", "affection", "heart", "relationship", "crush", "dating"}},
	{"stress", []string{"stress", "anxious", "worried", "overwhelmed", "pressure", "tension"}},
	{"work", []string{"work", "job", "career", "office", "boss", "deadline", "meeting"}},
	{"family", []string{"family", "parents", "children", "home", "marriage", "siblings"}},
	{"study", []string{"study", "exam", "school", "college", "learn", "education", "test"}},
	{"health", []string{"health", "sick", "pain", "doctor", "medicine", "illness"}},
	{"friendship", []string{"friend", "social", "party", "hangout", "lonely", "alone"}},
}

var intentTables = []keywordTable{
	{"seeking_help", []string{"help", "advice", "support", "how to", "what should i do"}},
	{"venting", []string{"frustrated", "angry", "upset", "can't stand", "hate"}},
	{"seeking_comfort", []string{"comfort", "soothe", "calm", "relax", "peace"}},
	{"expressing_gratitude", []string{"thankful", "grateful", "appreciate", "blessed"}},
	{"sharing_joy", []string{"happy", "excited", "great", "awesome", "wonderful"}},
	{"asking_info", []string{"what", "how", "why", "tell me", "explain"}},
}

func classify(text string, tables []keywordTable) string {
	lower := strings.ToLower(text)
	for _, table := range tables {
		for _, kw := range table.keywords {
			if strings.Contains(lower, kw) {
				return table.label
			}
		}
	}
	return "general"
}

func countHits(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

// AnalyzeText builds a mood profile from raw text. Pure and deterministic.
func AnalyzeText(text string) Profile {
	lower := strings.ToLower(text)

	var emotions []EmotionScore
	for _, entry := range emotionLexicon {
		hits := countHits(lower, entry.keywords)
		if hits == 0 {
			continue
		}
		score := float64(hits) * 0.2
		if score > 1 {
			score = 1
		}
		emotions = append(emotions, EmotionScore{Label: entry.emotion, Score: score})
	}
	sort.SliceStable(emotions, func(i, j int) bool { return emotions[i].Score > emotions[j].Score })

	primary := "neutral"
	var secondary []string
	if len(emotions) > 0 {
		primary = emotions[0].Label
		for _, e := range emotions[1:] {
			if len(secondary) == 3 {
				break
			}
			secondary = append(secondary, e.Label)
		}
	}
	if secondary == nil {
		secondary = []string{}
	}

	intensity := 0.5
	if len(emotions) > 0 {
		top := emotions
		if len(top) > 3 {
			top = top[:3]
		}
		sum := 0.0
		for _, e := range top {
			sum += e.Score
		}
		intensity = sum / 3
		if intensity > 1 {
			intensity = 1
		}
	}

	return Profile{
		PrimaryEmotion:    primary,
		SecondaryEmotions: secondary,
		Intent:            classify(text, intentTables),
		Sentiment:         scoreSentiment(lower),
		Topic:             classify(text, topicTables),
		Intensity:         intensity,
		AllEmotions:       emotions,
	}
}

func scoreSentiment(lower string) Sentiment {
	pos := countHits(lower, positiveWords)
	neg := countHits(lower, negativeWords)
	switch {
	case pos > neg:
		return Sentiment{Label: "positive", Score: clamp01(0.5 + 0.1*float64(pos-neg))}
	case neg > pos:
		return Sentiment{Label: "negative", Score: clamp01(0.5 + 0.1*float64(neg-pos))}
	default:
		return Sentiment{Label: "neutral", Score: 0.5}
	}
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
