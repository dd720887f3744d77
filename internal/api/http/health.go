package http

import (
	"net/http"

	"github.com/lineup-app/lineup-server/internal/api/respond"
	"github.com/lineup-app/lineup-server/internal/store"
)

// HealthHandler reports whether the document store is reachable.
type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// CheckHealth GET /api/health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
