package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"creative-studio/internal/events"
)

var componentMessages = map[string]string{
	events.ComponentBudget:   "Budget plan generated successfully",
	events.ComponentSchedule: "Schedule generated successfully",
	events.ComponentTasks:    "Task list generated successfully",
	events.ComponentVendors:  "Vendor recommendations generated successfully",
}

type planRequest struct {
	Text   string        `json:"text"`
	Basics events.Basics `json:"basics"`
}

func (h *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req planRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	text := req.Text
	if text == "" {
		text = req.Basics.Description
	}
	result := h.events.Plan(r.Context(), text, req.Basics)
	aiResponse(w, result, "Plan preview generated; answer follow-up questions to complete the plan")
}

type componentRequest struct {
	Basics  events.Basics `json:"basics"`
	Current any           `json:"current"`
}

func (h *Handler) componentHandler(component string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req componentRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "Invalid JSON body")
			return
		}
		result, _ := h.events.GenerateComponent(r.Context(), component, req.Basics, req.Current)
		aiResponse(w, result, componentMessages[component])
	}
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		EventData events.ReportData `json:"eventData"`
		Options   map[string]any    `json:"options"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}
	result, _ := h.events.GenerateReport(r.Context(), req.EventData, req.Options)
	statusOK(w, result)
}

type eventRequest struct {
	Basics  events.Basics  `json:"basics"`
	Preview map[string]any `json:"preview"`
}

func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		summaries := h.events.Store().List()
		writeJSON(w, http.StatusOK, map[string]any{"count": len(summaries), "events": summaries})
	case http.MethodPost:
		var req eventRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "Invalid JSON body")
			return
		}
		ev, err := h.events.Store().Create(req.Basics, req.Preview)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": ev.ID, "event": ev})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleEventByID serves /events/{id} and /events/{id}/generate/{component}.
func (h *Handler) handleEventByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/events/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		h.serveEvent(w, r, parts[0])
	case len(parts) == 3 && parts[1] == "generate":
		h.generateComponentForEvent(w, r, parts[0], parts[2])
	default:
		notFound(w, "Event not found")
	}
}

func (h *Handler) serveEvent(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		ev, err := h.events.Store().Get(id)
		if err != nil {
			notFound(w, "Event not found")
			return
		}
		writeJSON(w, http.StatusOK, ev)
	case http.MethodPut:
		var req eventRequest
		if err := decode(r, &req); err != nil {
			badRequest(w, "Invalid JSON body")
			return
		}
		ev, err := h.events.Store().UpdateBasics(id, req.Basics, req.Preview)
		if err != nil {
			if errors.Is(err, events.ErrNotFound) {
				notFound(w, "Event not found")
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, ev)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) generateComponentForEvent(w http.ResponseWriter, r *http.Request, id, component string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !events.ValidComponent(component) {
		badRequest(w, "Unknown component")
		return
	}
	_, result, err := h.events.GenerateForEvent(r.Context(), id, component)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			notFound(w, "Event not found")
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": err.Error()})
		return
	}
	aiResponse(w, result, fmt.Sprintf("%s generated and saved for event %s", component, id))
}
