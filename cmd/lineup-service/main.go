package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpHandlers "github.com/lineup-app/lineup-server/internal/api/http"
	"github.com/lineup-app/lineup-server/internal/auth"
	"github.com/lineup-app/lineup-server/internal/config"
	"github.com/lineup-app/lineup-server/internal/extract"
	"github.com/lineup-app/lineup-server/internal/platform/logger"
	"github.com/lineup-app/lineup-server/internal/services"
	"github.com/lineup-app/lineup-server/internal/store/badgerstore"
	"github.com/lineup-app/lineup-server/internal/vision"
)

func main() {
	log := logger.New("lineup-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Str("data_dir", cfg.DataDir).
		Msg("Lineup service starting…")

	// -------- Document store ---------------
	st, err := badgerstore.Open(cfg.DataDir, cfg.TxnRetries, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Document store unavailable")
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("Store close failed")
		}
	}()

	// -------- Collaborators ----------------
	extractor := extract.NewClient(cfg.ExtractorURL, cfg.UpstreamTimeout)
	labeler := vision.NewClient(cfg.VisionURL, cfg.UpstreamTimeout)

	// -------- Router & Server --------------
	router := httpHandlers.NewRouter(httpHandlers.Deps{
		Store:    st,
		Users:    services.NewUserService(st),
		Events:   services.NewEventService(st, extractor, cfg.DefaultImage),
		Friends:  services.NewFriendService(st),
		Images:   services.NewImageService(st, labeler),
		Verifier: auth.NewStaticVerifier(cfg.DevAPIKey),
	})
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
