package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ventoryhq/ventory/internal/auth"
	"github.com/ventoryhq/ventory/internal/config"
	"github.com/ventoryhq/ventory/internal/server"
	"github.com/ventoryhq/ventory/internal/storage/sqlite"
	"github.com/ventoryhq/ventory/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	var authenticator auth.Authenticator
	switch cfg.AuthMode {
	case config.AuthModePassword:
		authenticator = auth.NewPasswordAuthenticator(store)
	default:
		// Anyone who can reach /login can claim any identity in this mode.
		slog.Warn("running in open auth mode: login does not verify credentials")
		authenticator = auth.NewOpenAuthenticator()
	}

	srv := server.New(store, jwtManager, authenticator, cfg.EnforceOwnership, slog.Default())
	router := srv.Router(cfg.CORSOrigins)

	// HTTP/2 cleartext so local clients and proxies can multiplex without TLS.
	handler := h2c.NewHandler(router, &http2.Server{})

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting",
			"address", cfg.HTTPAddr,
			"auth_mode", cfg.AuthMode,
			"enforce_ownership", cfg.EnforceOwnership,
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
