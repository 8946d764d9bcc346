package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ventoryhq/ventory/internal/middleware"
)

// Router assembles the chi router with shared middleware, the CORS policy,
// and every endpoint mounted. Protected routes sit behind the access guard;
// everything else is publicly reachable.
func (s *Server) Router(corsOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", s.handleLogin)
	r.Post("/register", s.handleRegister)

	r.Get("/topitems", s.handleTopItems)
	r.Get("/itemsummary", s.handleItemSummary)
	r.Get("/blogs", s.handleListBlogs)
	r.Get("/blogs/{id}", s.handleGetBlog)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(s.jwtManager))

		r.Get("/items", s.handleListItems)
		r.Post("/items", s.handleCreateItem)
		r.Get("/myitems", s.handleMyItems)
		r.Get("/items/{id}", s.handleGetItem)
		r.Patch("/items/{id}", s.handleUpdateQuantity)
		r.Delete("/items/{id}", s.handleDeleteItem)
		r.Post("/blogs", s.handleCreateBlog)
	})

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("Ventory API is running"))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("OK"))
}
