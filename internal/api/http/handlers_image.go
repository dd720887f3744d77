package http

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/lineup-app/lineup-server/internal/api/respond"
	"github.com/lineup-app/lineup-server/internal/api/validate"
	"github.com/lineup-app/lineup-server/internal/services"
)

// ImageHandler provides HTTP transport for catalog ingestion.
type ImageHandler struct {
	svc *services.ImageService
}

func NewImageHandler(svc *services.ImageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

// IngestImage POST /api/images
func (h *ImageHandler) IngestImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("url", req.URL); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	img, err := h.svc.Ingest(r.Context(), req.URL)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, img)
}
