package mindmap

import (
	"fmt"

	"creative-studio/internal/llm"
)

const systemPrompt = `You are MindGraph-AI, an NLP engine that generates flowcharts, mind maps, summaries, and keywords using STRICT logic.

================================================================
MIND MAP RULES (STRICT)
================================================================
1. Identify ONE central topic (noun phrase).
2. Identify 3-6 conceptual categories:
   - Features, Benefits, Components, Methods, Applications,
     Challenges, Impact, Use-Cases, Advantages.
3. Subnodes MUST:
   - Be meaningful concepts.
   - Be noun phrases or verb-noun concepts.
   - NOT be adjectives (big, heavy).
   - NOT be broken phrases.
   - NOT be hallucinated.
   - NOT be words copied without meaning.
4. Cluster subnodes under correct category logically.
5. Output as JSON:
{
  "type": "mindgraph",
  "nodes": [...],
  "edges": [...]
}
Rules:
- Level 0 -> Central Topic
- Level 1 -> Category
- Level 2 -> Subnode

================================================================
FLOWCHART RULES (STRICT)
================================================================
1. Identify the goal (objective).
2. Extract steps sequentially.
3. Decisions only if text clearly implies choice.
4. Nodes: Start, Process, Decision (optional), End
Output JSON:
{
  "type": "flowchart",
  "nodes": [...],
  "edges": [...]
}

================================================================
KEYWORD RULE
================================================================
Return 8-15 meaningful keywords (no stopwords, no adjectives).

================================================================
SUMMARY RULE
================================================================
Return JSON ONLY:
{
 "title": "",
 "summary_short": "",
 "summary_medium": "",
 "summary_detailed": "",
 "key_points": [],
 "keywords": []
}

================================================================
GENERAL RULES
================================================================
- No hallucinations.
- No reuse of previous outputs.
- Every new text is processed fresh.
- Output must ALWAYS be valid JSON.
- No adjectives as categories or nodes.
- No broken English.`

func classifyPrompt(text string) []llm.Message {
	user := fmt.Sprintf(`Classify the best visualization type for this text:

Text:
%s

Choose ONLY ONE:
- mindgraph
- flowchart
- summary
- keywords

Rules:
- If text explains a concept -> mindgraph
- If text describes steps or process -> flowchart
- If long informational -> summary
- If shallow -> keywords

Return ONLY:
{"mode": "<one>"}`, text)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: user},
	}
}

func analyzePrompt(text, mode string) []llm.Message {
	user := fmt.Sprintf(`Generate a %s graph strictly.
Text:
%s

Return EXACT JSON with keys:
{
 "type": "%s",
 "nodes": [{"id":"n0","label":"Root"}],
 "edges": [{"from":"n0","to":"n1"}]
}
Only include JSON. No explanations.`, mode, text, mode)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: user},
	}
}

func summarizePrompt(text string) []llm.Message {
	user := fmt.Sprintf(`Summarize this text using STRICT summary format:

Text:
%s

Return EXACT JSON:
{
 "title": "",
 "summary_short": "",
 "summary_medium": "",
 "summary_detailed": "",
 "key_points": [],
 "keywords": []
}`, text)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: user},
	}
}
