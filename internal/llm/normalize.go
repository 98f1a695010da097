package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	objectSpan    = regexp.MustCompile(`\{[\s\S]*\}`)
	arraySpan     = regexp.MustCompile(`\[[\s\S]*\]`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// stripFences removes markdown code-fence markers around a model response.
func stripFences(text string) string {
	t := strings.ReplaceAll(text, "```json", "")
	t = strings.ReplaceAll(t, "```", "")
	return strings.TrimSpace(t)
}

// ForceObject extracts a JSON object from an arbitrary model response.
// It strips code fences, tries a direct parse, then falls back to the first
// greedy {...} span with trailing commas removed. Returns nil when no object
// can be recovered; it never fails.
//
// If prose after the real object also contains braces, the greedy span can
// swallow it and mis-parse. Accepted imprecision.
func ForceObject(text string) map[string]any {
	t := stripFences(text)
	if t == "" {
		return nil
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(t), &out); err == nil {
		return out
	}

	span := objectSpan.FindString(t)
	if span == "" {
		return nil
	}
	span = trailingComma.ReplaceAllString(span, "$1")
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil
	}
	return out
}

// ForceArray is ForceObject for top-level JSON arrays.
func ForceArray(text string) []any {
	t := stripFences(text)
	if t == "" {
		return nil
	}

	var out []any
	if err := json.Unmarshal([]byte(t), &out); err == nil {
		return out
	}

	span := arraySpan.FindString(t)
	if span == "" {
		return nil
	}
	span = trailingComma.ReplaceAllString(span, "$1")
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil
	}
	return out
}
