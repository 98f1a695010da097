package web

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"creative-studio/internal/certificate"
	"creative-studio/internal/events"
	"creative-studio/internal/magazine"
	"creative-studio/internal/mindmap"
	"creative-studio/internal/mood"
	"creative-studio/internal/todo"
)

// Handler wires every studio service into one HTTP surface. The services
// are injected so tests can run the handlers against stub providers.
type Handler struct {
	events      *events.Service
	mindmap     *mindmap.Service
	certificate *certificate.Service
	magazine    *magazine.Service
	mood        *mood.Service
	todo        *todo.Service

	staticRoot        string
	dashboardUser     string
	dashboardPassword string
	certDefaultDate   string
}

type Options struct {
	Events      *events.Service
	Mindmap     *mindmap.Service
	Certificate *certificate.Service
	Magazine    *magazine.Service
	Mood        *mood.Service
	Todo        *todo.Service

	StaticRoot             string
	DashboardUser          string
	DashboardPassword      string
	CertificateDefaultDate string
}

func NewHandler(opts Options) *Handler {
	return &Handler{
		events:            opts.Events,
		mindmap:           opts.Mindmap,
		certificate:       opts.Certificate,
		magazine:          opts.Magazine,
		mood:              opts.Mood,
		todo:              opts.Todo,
		staticRoot:        opts.StaticRoot,
		dashboardUser:     opts.DashboardUser,
		dashboardPassword: opts.DashboardPassword,
		certDefaultDate:   opts.CertificateDefaultDate,
	}
}

// Routes builds the full mux, CORS-wrapped.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/auth/login", h.handleLogin)
	mux.HandleFunc("/auth/check", h.handleAuthCheck)

	mux.HandleFunc("/ai/plan", h.handlePlan)
	mux.HandleFunc("/ai/budget", h.componentHandler(events.ComponentBudget))
	mux.HandleFunc("/ai/schedule", h.componentHandler(events.ComponentSchedule))
	mux.HandleFunc("/ai/tasks", h.componentHandler(events.ComponentTasks))
	mux.HandleFunc("/ai/vendors", h.componentHandler(events.ComponentVendors))
	mux.HandleFunc("/ai/report", h.handleReport)

	mux.HandleFunc("/events", h.handleEvents)
	mux.HandleFunc("/events/", h.handleEventByID)

	mux.HandleFunc("/api/mindmap/classify", h.handleMindmapClassify)
	mux.HandleFunc("/api/mindmap/analyze", h.handleMindmapAnalyze)
	mux.HandleFunc("/api/mindmap/summarize", h.handleMindmapSummarize)

	mux.HandleFunc("/ai/certificate/generate", h.handleCertificateGenerate)
	mux.HandleFunc("/ai/certificate/analyze", h.handleCertificateAnalyze)
	mux.HandleFunc("/ai/certificate/suggest", h.handleCertificateSuggest)
	mux.HandleFunc("/ai/certificate/autofill", h.handleCertificateAutofill)

	mux.HandleFunc("/api/ai/suggest", h.handleEditorSuggest)
	mux.HandleFunc("/api/ai/autofill", h.handleEditorAutofill)
	mux.HandleFunc("/api/ai/design", h.handleEditorDesign)
	mux.HandleFunc("/api/ai/analyze_text", h.handleAnalyzeText)

	mux.HandleFunc("/api/magazine/generate", h.handleMagazineGenerate)

	mux.HandleFunc("/mood/analyze", h.handleMoodAnalyze)
	mux.HandleFunc("/mood/chat", h.handleMoodChat)
	mux.HandleFunc("/mood/songs", h.handleMoodSongs)
	mux.HandleFunc("/api/ai-study/rewrite", h.handleRewrite)

	mux.HandleFunc("/todo/analyze", h.handleTodoAnalyze)
	mux.HandleFunc("/todo/suggest", h.handleTodoSuggest)

	h.mountStatic(mux)

	return withCORS(mux)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️ Failed to encode response: %v", err)
	}
}

// decode reads the request body into v; a missing body leaves v at its
// zero value.
func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func badRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"detail": detail})
}

func notFound(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusNotFound, map[string]any{"detail": detail})
}

// aiResponse is the planner's reply envelope.
func aiResponse(w http.ResponseWriter, data any, message string) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func statusOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "data": data})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "healthy"})
}

const sessionCookie = "session"

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	if req.Username != h.dashboardUser || req.Password != h.dashboardPassword || h.dashboardPassword == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Invalid credentials"})
		return
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "true", Path: "/"})
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) handleAuthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": hasSession(r)})
}

func hasSession(r *http.Request) bool {
	c, err := r.Cookie(sessionCookie)
	return err == nil && c.Value == "true"
}
