package web

import (
	"net/http"
	"strings"

	"creative-studio/internal/certificate"
	"creative-studio/internal/magazine"
)

// Handlers for the mindmap, certificate and magazine front-ends.

type mindmapRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

func (h *Handler) readMindmapRequest(w http.ResponseWriter, r *http.Request) (mindmapRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return mindmapRequest{}, false
	}
	var req mindmapRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return mindmapRequest{}, false
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "Text is empty")
		return mindmapRequest{}, false
	}
	return req, true
}

func (h *Handler) handleMindmapClassify(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readMindmapRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.mindmap.Classify(r.Context(), req.Text))
}

func (h *Handler) handleMindmapAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readMindmapRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.mindmap.Analyze(r.Context(), req.Text, req.Mode))
}

func (h *Handler) handleMindmapSummarize(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readMindmapRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.mindmap.Summarize(r.Context(), req.Text))
}

func (h *Handler) handleCertificateGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		EventType    string `json:"event_type"`
		Requirements string `json:"requirements"`
		Theme        string `json:"theme"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	statusOK(w, h.certificate.GenerateTemplate(r.Context(), req.EventType, req.Requirements, req.Theme))
}

func (h *Handler) handleCertificateAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		CertificateText string         `json:"certificate_text"`
		CurrentDesign   map[string]any `json:"current_design"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	statusOK(w, h.certificate.AnalyzeContent(r.Context(), req.CertificateText, req.CurrentDesign))
}

func (h *Handler) handleCertificateSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		CurrentText     string `json:"current_text"`
		CertificateType string `json:"certificate_type"`
		Tone            string `json:"tone"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	statusOK(w, h.certificate.SuggestWording(r.Context(), req.CurrentText, req.CertificateType, req.Tone))
}

func (h *Handler) handleCertificateAutofill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		RecipientInfo  map[string]any `json:"recipient_info"`
		EventContext   map[string]any `json:"event_context"`
		TemplateFields []string       `json:"template_fields"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	statusOK(w, h.certificate.Autofill(r.Context(), req.RecipientInfo, req.EventContext, req.TemplateFields))
}

func (h *Handler) handleEditorSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Title       string `json:"title"`
		Subtitle    string `json:"subtitle"`
		Description string `json:"description"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, certificate.SuggestFields(req.Title, req.Description))
}

func (h *Handler) handleEditorAutofill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		State map[string]any `json:"state"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, certificate.AutofillState(req.State, h.certDefaultDate))
}

func (h *Handler) handleEditorDesign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		State map[string]any `json:"state"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": certificate.DesignSuggestions(req.State)})
}

func (h *Handler) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Text     string `json:"text"`
		Template string `json:"template"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "Text is empty")
		return
	}
	writeJSON(w, http.StatusOK, h.certificate.AnalyzeText(r.Context(), req.Text, req.Template))
}

func (h *Handler) handleMagazineGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req magazine.Request
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, h.magazine.Generate(r.Context(), req))
}
