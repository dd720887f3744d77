package http

import (
	"github.com/gorilla/mux"

	"github.com/lineup-app/lineup-server/internal/api/recovery"
	"github.com/lineup-app/lineup-server/internal/auth"
	"github.com/lineup-app/lineup-server/internal/services"
	"github.com/lineup-app/lineup-server/internal/store"
)

// Deps bundles everything the router needs.
type Deps struct {
	Store    store.Store
	Users    *services.UserService
	Events   *services.EventService
	Friends  *services.FriendService
	Images   *services.ImageService
	Verifier auth.Verifier
}

// NewRouter creates the HTTP router with all API routes. Every route except
// the health check requires a verifiable bearer token.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	healthHandler := NewHealthHandler(d.Store)
	userHandler := NewUserHandler(d.Users)
	eventHandler := NewEventHandler(d.Events)
	friendHandler := NewFriendHandler(d.Friends)
	imageHandler := NewImageHandler(d.Images)

	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	authed := auth.Middleware(d.Verifier)

	// User endpoints
	users := router.PathPrefix("/api/users").Subrouter()
	users.Use(authed)
	users.HandleFunc("", userHandler.CreateUser).Methods("POST")
	users.HandleFunc("/{uid}", userHandler.GetUser).Methods("GET")
	users.HandleFunc("/{uid}", userHandler.UpdateTags).Methods("PATCH")
	users.HandleFunc("/{uid}", userHandler.DeleteUser).Methods("DELETE")

	// Membership line
	users.HandleFunc("/{uid}/events/join", eventHandler.JoinEvent).Methods("POST")
	users.HandleFunc("/{uid}/events/leave", eventHandler.LeaveEvent).Methods("POST")
	users.HandleFunc("/{uid}/events/recents", eventHandler.Recents).Methods("GET")

	// Friend handshake
	users.HandleFunc("/{uid}/requests/send", friendHandler.SendRequest).Methods("POST")
	users.HandleFunc("/{uid}/requests/accept", friendHandler.AcceptRequest).Methods("POST")
	users.HandleFunc("/{uid}/requests", friendHandler.ListRequests).Methods("GET")
	users.HandleFunc("/{uid}/friends", friendHandler.ListFriends).Methods("GET")

	// Event endpoints
	events := router.PathPrefix("/api/events").Subrouter()
	events.Use(authed)
	events.HandleFunc("", eventHandler.CreateEvent).Methods("POST")
	events.HandleFunc("/{eventId}", eventHandler.GetEvent).Methods("GET")

	// Catalog ingestion
	images := router.PathPrefix("/api/images").Subrouter()
	images.Use(authed)
	images.HandleFunc("", imageHandler.IngestImage).Methods("POST")

	return router
}
