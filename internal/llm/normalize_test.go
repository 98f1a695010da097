package llm

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestForceObject_FencedRoundTrip(t *testing.T) {
	src := map[string]any{
		"title":    "Summary",
		"keywords": []any{"alpha", "beta"},
		"count":    float64(3),
	}
	b, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	wrapped := "```json\n" + string(b) + "\n```"

	got := ForceObject(wrapped)
	if got == nil {
		t.Fatal("expected object, got nil")
	}
	if !reflect.DeepEqual(got, src) {
		t.Fatalf("round trip mismatch: got %v want %v", got, src)
	}
}

func TestForceObject_ProseWrapped(t *testing.T) {
	text := "Sure! Here is the JSON you asked for:\n{\"mode\": \"flowchart\"}\nHope that helps."
	got := ForceObject(text)
	if got == nil {
		t.Fatal("expected object, got nil")
	}
	if got["mode"] != "flowchart" {
		t.Fatalf("unexpected mode: %v", got["mode"])
	}
}

func TestForceObject_TrailingCommas(t *testing.T) {
	text := `{"items": ["a", "b",], "total": 2,}`
	got := ForceObject(text)
	if got == nil {
		t.Fatal("expected repaired object, got nil")
	}
	items, ok := got["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("unexpected items: %v", got["items"])
	}
	if got["total"] != float64(2) {
		t.Fatalf("unexpected total: %v", got["total"])
	}
}

func TestForceObject_Unrecoverable(t *testing.T) {
	for _, text := range []string{"", "no json here", "{broken", "[1,2,3]"} {
		if got := ForceObject(text); got != nil {
			t.Fatalf("expected nil for %q, got %v", text, got)
		}
	}
}

func TestForceArray(t *testing.T) {
	text := "```\n[{\"category\":\"venue\",\"estimate\":100},]\n```"
	got := ForceArray(text)
	if len(got) != 1 {
		t.Fatalf("expected 1 element, got %v", got)
	}
	first, ok := got[0].(map[string]any)
	if !ok || first["category"] != "venue" {
		t.Fatalf("unexpected element: %v", got[0])
	}
}
