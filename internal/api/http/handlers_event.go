package http

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/lineup-app/lineup-server/internal/api/respond"
	"github.com/lineup-app/lineup-server/internal/api/validate"
	"github.com/lineup-app/lineup-server/internal/services"
)

// EventHandler provides HTTP transport for event operations, including the
// membership line.
type EventHandler struct {
	svc *services.EventService
}

func NewEventHandler(svc *services.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// CreateEvent POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Event struct {
			UID         string `json:"uid"`
			Username    string `json:"username"`
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"event"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateEvent(req.Event.UID, req.Event.Username, req.Event.Name, req.Event.Description); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	ev, err := h.svc.CreateEvent(r.Context(), services.CreateEventRequest{
		UID:         req.Event.UID,
		Username:    req.Event.Username,
		Name:        req.Event.Name,
		Description: req.Event.Description,
	})
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, ev)
}

// GetEvent GET /api/events/{eventId}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]
	ev, err := h.svc.GetEvent(r.Context(), eventID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, ev)
}

// JoinEvent POST /api/users/{uid}/events/join?event=<eventId>
func (h *EventHandler) JoinEvent(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	eventID := r.URL.Query().Get("event")
	if eventID == "" {
		respond.WriteBadRequest(w, "event query parameter is required")
		return
	}

	ev, err := h.svc.Join(r.Context(), eventID, uid)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, ev)
}

// LeaveEvent POST /api/users/{uid}/events/leave?event=<eventId>
func (h *EventHandler) LeaveEvent(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	eventID := r.URL.Query().Get("event")
	if eventID == "" {
		respond.WriteBadRequest(w, "event query parameter is required")
		return
	}

	ev, err := h.svc.Leave(r.Context(), eventID, uid)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, ev)
}

// Recents GET /api/users/{uid}/events/recents
func (h *EventHandler) Recents(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	summaries, err := h.svc.Recents(r.Context(), uid)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"events": summaries, "count": len(summaries)})
}
