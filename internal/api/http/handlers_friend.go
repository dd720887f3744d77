package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lineup-app/lineup-server/internal/api/respond"
	"github.com/lineup-app/lineup-server/internal/api/validate"
	"github.com/lineup-app/lineup-server/internal/services"
)

// FriendHandler provides HTTP transport for the friend handshake.
type FriendHandler struct {
	svc *services.FriendService
}

func NewFriendHandler(svc *services.FriendService) *FriendHandler {
	return &FriendHandler{svc: svc}
}

// SendRequest POST /api/users/{uid}/requests/send?toUid=<uid>
func (h *FriendHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	from := mux.Vars(r)["uid"]
	to := r.URL.Query().Get("toUid")
	if err := validate.UID("toUid", to); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.svc.SendRequest(r.Context(), from, to); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// AcceptRequest POST /api/users/{uid}/requests/accept?fromUid=<uid>
func (h *FriendHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	to := mux.Vars(r)["uid"]
	from := r.URL.Query().Get("fromUid")
	if err := validate.UID("fromUid", from); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.svc.AcceptRequest(r.Context(), to, from); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ListRequests GET /api/users/{uid}/requests
func (h *FriendHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	reqs, err := h.svc.ListRequests(r.Context(), uid)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, reqs)
}

// ListFriends GET /api/users/{uid}/friends
func (h *FriendHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	friends, err := h.svc.ListFriends(r.Context(), uid)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"friends": friends, "count": len(friends)})
}
