package http

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/lineup-app/lineup-server/internal/api/respond"
	"github.com/lineup-app/lineup-server/internal/api/validate"
	"github.com/lineup-app/lineup-server/internal/model"
	"github.com/lineup-app/lineup-server/internal/services"
)

// UserHandler provides HTTP transport for user operations.
type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUser POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Info struct {
			UID      string `json:"uid"`
			Username string `json:"username"`
			Icon     string `json:"icon"`
		} `json:"info"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateUser(req.Info.UID, req.Info.Username, req.Info.Icon); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	u, err := h.svc.CreateUser(r.Context(), &model.User{
		UID:      req.Info.UID,
		Username: req.Info.Username,
		Icon:     req.Info.Icon,
	})
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}

// GetUser GET /api/users/{uid}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	u, err := h.svc.GetUser(r.Context(), uid)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// UpdateTags PATCH /api/users/{uid}
func (h *UserHandler) UpdateTags(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	var req struct {
		Tags map[string]float64 `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.TagWeights(req.Tags); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	u, err := h.svc.UpdateTags(r.Context(), uid, req.Tags)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// DeleteUser DELETE /api/users/{uid}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	if err := h.svc.DeleteUser(r.Context(), uid); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
