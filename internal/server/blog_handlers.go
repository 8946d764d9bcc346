package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ventoryhq/ventory/internal/middleware"
	"github.com/ventoryhq/ventory/internal/models"
	"github.com/ventoryhq/ventory/internal/storage"
)

type createBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	// OwnerEmail is discarded; authorship comes from the token claim.
	OwnerEmail string `json:"owner_email"`
}

// handleListBlogs returns every post, newest first. Public.
func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.store.ListBlogs(r.Context())
	if err != nil {
		s.logger.Error("failed to list blogs", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list blogs")
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// handleGetBlog fetches a single post by id. Public.
func (s *Server) handleGetBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	blog, err := s.store.GetBlog(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog not found")
			return
		}
		s.logger.Error("failed to get blog", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get blog")
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// handleCreateBlog inserts a new post authored by the caller. Same ownership
// stamping rule as item creation.
func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	var req createBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	blog := &models.Blog{
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.Image,
		OwnerEmail: middleware.GetEmail(r.Context()),
	}

	if err := s.store.CreateBlog(r.Context(), blog); err != nil {
		s.logger.Error("failed to create blog", "owner", blog.OwnerEmail, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create blog")
		return
	}

	s.logger.Info("blog created", "id", blog.ID, "owner", blog.OwnerEmail)
	writeJSON(w, http.StatusCreated, blog)
}
