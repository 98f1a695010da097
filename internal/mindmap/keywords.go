package mindmap

import (
	"regexp"
	"sort"
	"strings"
)

var tokenRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9\-]+`)

var stopwords = map[string]bool{
	"the": true, "and": true, "of": true, "to": true, "in": true,
	"for": true, "on": true, "with": true, "a": true, "an": true,
	"is": true, "are": true, "this": true, "that": true, "it": true,
	"at": true, "as": true, "by": true, "from": true, "or": true,
	"be": true, "into": true, "your": true, "you": true, "we": true,
	"our": true,
}

// ExtractKeywords returns up to 12 frequent tokens from text, most frequent
// first with alphabetical tie-breaking. Stopwords and tokens shorter than
// three characters are skipped.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}
	freq := map[string]int{}
	for _, tok := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if stopwords[tok] || len(tok) < 3 {
			continue
		}
		freq[tok]++
	}
	keywords := make([]string, 0, len(freq))
	for tok := range freq {
		keywords = append(keywords, tok)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if freq[keywords[i]] != freq[keywords[j]] {
			return freq[keywords[i]] > freq[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})
	if len(keywords) > 12 {
		keywords = keywords[:12]
	}
	return keywords
}
