// Package server assembles the HTTP surface of the Ventory API: the chi
// router, the request handlers, and their JSON plumbing.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ventoryhq/ventory/internal/auth"
	"github.com/ventoryhq/ventory/internal/storage"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	store            storage.Store
	jwtManager       *auth.JWTManager
	authenticator    auth.Authenticator
	enforceOwnership bool
	logger           *slog.Logger
}

// New creates a Server. When enforceOwnership is true, quantity updates and
// deletes are restricted to the item's owner; when false any authenticated
// caller may mutate any item, which is the service's historical behavior.
func New(store storage.Store, jwtManager *auth.JWTManager, authenticator auth.Authenticator, enforceOwnership bool, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:            store,
		jwtManager:       jwtManager,
		authenticator:    authenticator,
		enforceOwnership: enforceOwnership,
		logger:           logger,
	}
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError emits the normalized error shape used across all endpoints.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
