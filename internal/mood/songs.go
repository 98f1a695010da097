package mood

import "sort"

type Song struct {
	Title           string   `json:"title"`
	Artist          string   `json:"artist"`
	Language        string   `json:"language"`
	EmotionSpectrum []string `json:"emotion_spectrum"`
	Energy          float64  `json:"energy"`
	TopicMatch      []string `json:"topic_match"`
	IntensityMatch  string   `json:"intensity_match"`
	Spotify         string   `json:"spotify"`
	YouTube         string   `json:"youtube"`
}

var songLibrary = []Song{
	{
		Title: "Happy", Artist: "Pharrell Williams", Language: "english",
		EmotionSpectrum: []string{"joy", "calm"}, Energy: 0.9,
		TopicMatch: []string{"friendship", "general"}, IntensityMatch: "high",
		Spotify: "https://open.spotify.com/track/60nZcImufyMA1MKQY3dcCH",
		YouTube: "https://www.youtube.com/watch?v=ZbZSe6N_BXs",
	},
	{
		Title: "Can't Stop the Feeling!", Artist: "Justin Timberlake", Language: "english",
		EmotionSpectrum: []string{"joy", "surprise"}, Energy: 0.85,
		TopicMatch: []string{"friendship", "love"}, IntensityMatch: "high",
		Spotify: "https://open.spotify.com/track/1Je1IMUlBXcx1Fz0WE7oPT",
		YouTube: "https://www.youtube.com/watch?v=ru0K8uYEZWw",
	},
	{
		Title: "Someone Like You", Artist: "Adele", Language: "english",
		EmotionSpectrum: []string{"sadness"}, Energy: 0.3,
		TopicMatch: []string{"love"}, IntensityMatch: "high",
		Spotify: "https://open.spotify.com/track/1zwMYTA5nlNjZxYrvBB2pV",
		YouTube: "https://www.youtube.com/watch?v=hLQl3WQQoQ0",
	},
	{
		Title: "Hurt", Artist: "Johnny Cash", Language: "english",
		EmotionSpectrum: []string{"sadness", "fear"}, Energy: 0.25,
		TopicMatch: []string{"family", "health"}, IntensityMatch: "high",
		Spotify: "https://open.spotify.com/track/28cnXtME493VX9NOw9cIUh",
		YouTube: "https://www.youtube.com/watch?v=vt1Pwfnh5pc",
	},
	{
		Title: "The Night We Met", Artist: "Lord Huron", Language: "english",
		EmotionSpectrum: []string{"sadness", "calm"}, Energy: 0.35,
		TopicMatch: []string{"love"}, IntensityMatch: "low",
		Spotify: "https://open.spotify.com/track/0QZ5yyl6B6utIWkxeBDxQN",
		YouTube: "https://www.youtube.com/watch?v=KtlgYxa6BMU",
	},
	{
		Title: "Break Stuff", Artist: "Limp Bizkit", Language: "english",
		EmotionSpectrum: []string{"anger"}, Energy: 0.95,
		TopicMatch: []string{"work", "stress"}, IntensityMatch: "high",
		Spotify: "https://open.spotify.com/track/5cZqsjVs6MevCnAkasbEOX",
		YouTube: "https://www.youtube.com/watch?v=gP5b2P4pGZQ",
	},
	{
		Title: "Weightless", Artist: "Marconi Union", Language: "english",
		EmotionSpectrum: []string{"anxious", "calm"}, Energy: 0.15,
		TopicMatch: []string{"stress", "health"}, IntensityMatch: "low",
		Spotify: "https://open.spotify.com/track/1WJzDVVVFG1gKz1d0P8twz",
		YouTube: "https://www.youtube.com/watch?v=UfcAVejs1Ac",
	},
	{
		Title: "What a Wonderful World", Artist: "Louis Armstrong", Language: "english",
		EmotionSpectrum: []string{"calm", "joy"}, Energy: 0.4,
		TopicMatch: []string{"general"}, IntensityMatch: "low",
		Spotify: "https://open.spotify.com/track/29U7stRjqHU6rMiS8BfaI9",
		YouTube: "https://www.youtube.com/watch?v=A3yCcXgbKrE",
	},
	{
		Title: "Kun Faya Kun", Artist: "A.R. Rahman", Language: "hindi",
		EmotionSpectrum: []string{"calm", "sadness"}, Energy: 0.3,
		TopicMatch: []string{"stress", "general"}, IntensityMatch: "low",
		Spotify: "https://open.spotify.com/track/1psWBHkBFHsYDDdP4MDkfr",
		YouTube: "https://www.youtube.com/watch?v=T94PHkuydcw",
	},
	{
		Title: "Gallan Goodiyaan", Artist: "Shankar-Ehsaan-Loy", Language: "hindi",
		EmotionSpectrum: []string{"joy"}, Energy: 0.9,
		TopicMatch: []string{"family", "friendship"}, IntensityMatch: "high",
		Spotify: "https://open.spotify.com/track/6JgTKkhD4iTWk0BBSdakvL",
		YouTube: "https://www.youtube.com/watch?v=jCEdTq3j-0U",
	},
	{
		Title: "Channa Mereya", Artist: "Arijit Singh", Language: "hindi",
		EmotionSpectrum: []string{"sadness"}, Energy: 0.35,
		TopicMatch: []string{"love"}, IntensityMatch: "high",
		Spotify: "https://open.spotify.com/track/0nnmUNhDSXFtag0hcPjJoT",
		YouTube: "https://www.youtube.com/watch?v=284Ov7ysmfA",
	},
}

// RecommendSongs scores the library against a mood profile and returns the
// top matches in the requested language. Equal scores keep library order,
// so recommendations are stable for the same profile.
func RecommendSongs(profile Profile, language string, limit int) []Song {
	if limit <= 0 {
		limit = 5
	}
	type scored struct {
		song  Song
		score int
	}
	var candidates []scored
	for _, song := range songLibrary {
		if song.Language != language {
			continue
		}
		score := 0
		if contains(song.EmotionSpectrum, profile.PrimaryEmotion) {
			score += 3
		}
		for _, e := range profile.SecondaryEmotions {
			if contains(song.EmotionSpectrum, e) {
				score += 2
				break
			}
		}
		switch profile.Intent {
		case "seeking_comfort":
			if song.Energy < 0.6 {
				score += 2
			}
		case "venting":
			if song.Energy > 0.7 {
				score += 2
			}
		case "sharing_joy":
			if song.Energy > 0.8 {
				score += 2
			}
		}
		if contains(song.TopicMatch, profile.Topic) {
			score++
		}
		if profile.Intensity > 0.7 && song.IntensityMatch == "high" {
			score++
		} else if profile.Intensity < 0.4 && song.IntensityMatch == "low" {
			score++
		}
		switch profile.Sentiment.Label {
		case "negative":
			if song.Energy < 0.5 {
				score++
			}
		case "positive":
			if song.Energy > 0.6 {
				score++
			}
		}
		candidates = append(candidates, scored{song: song, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]Song, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.song)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
