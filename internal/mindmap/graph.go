package mindmap

import (
	"fmt"
	"strings"
)

const (
	ModeMindgraph = "mindgraph"
	ModeFlowchart = "flowchart"
	ModeSummary   = "summary"
	ModeKeywords  = "keywords"
)

// maxNodes keeps the rendered graph readable; edges touching a trimmed node
// are dropped with it.
const maxNodes = 24

type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Graph struct {
	Type  string `json:"type"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NormalizeGraph coerces whatever the model returned into the strict
// node/edge schema the front-end renders. Three tiers: a recognizable
// nodes/edges pair is repaired in place; a summary-shaped object becomes a
// star graph around its title; anything else becomes a minimal two-node
// graph seeded from the input text. Always returns a non-empty graph.
func NormalizeGraph(obj map[string]any, mode, text string) Graph {
	if g, ok := coerceGraph(obj, mode); ok {
		return g
	}
	return deriveGraph(obj, mode, text)
}

func coerceGraph(obj map[string]any, mode string) (Graph, bool) {
	if obj == nil {
		return Graph{}, false
	}
	inNodes, okN := obj["nodes"].([]any)
	inEdges, okE := obj["edges"].([]any)
	if !okN || !okE {
		return Graph{}, false
	}
	var nodes []Node
	for i, raw := range inNodes {
		n, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		id := stringify(n["id"])
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}
		label := firstString(n, "label", "text", "name")
		if label == "" {
			label = fmt.Sprintf("Node %d", i)
		}
		nodes = append(nodes, Node{ID: id, Label: label})
	}
	if len(nodes) == 0 {
		return Graph{}, false
	}
	var edges []Edge
	for _, raw := range inEdges {
		e, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		from := firstString(e, "from", "source")
		to := firstString(e, "to", "target")
		if from != "" && to != "" {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return trimGraph(Graph{Type: mode, Nodes: nodes, Edges: edges}), true
}

func deriveGraph(obj map[string]any, mode, text string) Graph {
	title := "MindGraph"
	var keyPoints, keywords []string
	if obj != nil {
		if t := firstString(obj, "title", "topic"); t != "" {
			title = t
		}
		keyPoints = stringSlice(obj["key_points"])
		keywords = stringSlice(obj["keywords"])
		if len(keywords) == 0 {
			source := firstString(obj, "summary_detailed", "summary_medium", "summary_short")
			keywords = ExtractKeywords(source)
		}
	}

	g := Graph{Type: mode, Nodes: []Node{{ID: "title", Label: title}}}
	seen := map[string]bool{}
	for i, kp := range keyPoints {
		label := strings.TrimSpace(kp)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		id := fmt.Sprintf("kp_%d", i)
		g.Nodes = append(g.Nodes, Node{ID: id, Label: label})
		g.Edges = append(g.Edges, Edge{From: "title", To: id})
	}
	for j, kw := range keywords {
		label := strings.TrimSpace(kw)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		id := fmt.Sprintf("kw_%d", j)
		g.Nodes = append(g.Nodes, Node{ID: id, Label: label})
		g.Edges = append(g.Edges, Edge{From: "title", To: id})
	}

	if len(g.Nodes) == 1 {
		words := strings.Fields(strings.TrimSpace(text))
		label := "Snippet"
		if len(words) > 0 {
			if len(words) > 5 {
				words = words[:5]
			}
			label = strings.Join(words, " ")
		}
		g.Nodes = append(g.Nodes, Node{ID: "n1", Label: label})
		g.Edges = append(g.Edges, Edge{From: "title", To: "n1"})
	}
	return trimGraph(g)
}

func trimGraph(g Graph) Graph {
	if len(g.Nodes) <= maxNodes {
		return g
	}
	g.Nodes = g.Nodes[:maxNodes]
	valid := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		valid[n.ID] = true
	}
	kept := g.Edges[:0]
	for _, e := range g.Edges {
		if valid[e.From] && valid[e.To] {
			kept = append(kept, e)
		}
	}
	g.Edges = kept
	return g
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%v", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringify(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := stringify(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}
