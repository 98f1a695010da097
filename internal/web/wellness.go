package web

import (
	"net/http"
	"strings"

	"creative-studio/internal/mood"
	"creative-studio/internal/todo"
)

// Handlers for the mood companion and the todo assistant.

func (h *Handler) handleMoodAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Text     string `json:"text"`
		Language string `json:"language"`
		Persona  string `json:"persona"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	if req.Text == "" {
		badRequest(w, "Text is empty")
		return
	}
	writeJSON(w, http.StatusOK, h.mood.Analyze(req.Text))
}

func (h *Handler) handleMoodChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Message     string       `json:"message"`
		History     []any        `json:"history"`
		Language    string       `json:"language"`
		Persona     string       `json:"persona"`
		MoodProfile mood.Profile `json:"mood_profile"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	if req.Message == "" {
		badRequest(w, "Message is empty")
		return
	}
	if req.Language == "" {
		req.Language = "english"
	}
	if req.Persona == "" {
		req.Persona = "auto"
	}
	reply := h.mood.Chat(r.Context(), req.Message, req.Language, req.Persona, req.MoodProfile)
	writeJSON(w, http.StatusOK, map[string]any{"response": reply})
}

func (h *Handler) handleRewrite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Text          string `json:"text"`
		TargetEmotion string `json:"target_emotion"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "Text is empty")
		return
	}
	writeJSON(w, http.StatusOK, h.mood.Rewrite(r.Context(), req.Text, req.TargetEmotion))
}

func (h *Handler) handleMoodSongs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		MoodProfile mood.Profile `json:"mood_profile"`
		Language    string       `json:"language"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"songs": h.mood.Songs(req.MoodProfile, req.Language)})
}

func (h *Handler) handleTodoAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Action string      `json:"action"`
		Text   string      `json:"text"`
		Tasks  []todo.Task `json:"tasks"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, h.todo.Analyze(r.Context(), req.Action, req.Text, req.Tasks))
}

func (h *Handler) handleTodoSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Action string `json:"action"`
		Text   string `json:"text"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, h.todo.Suggest(r.Context(), req.Action, req.Text))
}
