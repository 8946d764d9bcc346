package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ventoryhq/ventory/internal/calculator"
	"github.com/ventoryhq/ventory/internal/middleware"
	"github.com/ventoryhq/ventory/internal/models"
	"github.com/ventoryhq/ventory/internal/storage"
)

// topItemsLimit caps the public newest-items listing.
const topItemsLimit = 6

type createItemRequest struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
	// OwnerEmail is accepted in the body for wire compatibility but always
	// discarded; ownership comes from the verified token claim.
	OwnerEmail string `json:"owner_email"`
}

type updateQuantityRequest struct {
	Quantity *int64 `json:"quantity"`
}

// handleListItems returns every item in the store. Any authenticated caller
// sees the full collection; this is the shared storefront view.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListItems(r.Context())
	if err != nil {
		s.logger.Error("failed to list items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// handleMyItems returns only the caller's items.
func (s *Server) handleMyItems(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetEmail(r.Context())
	items, err := s.store.ListItemsByOwner(r.Context(), email)
	if err != nil {
		s.logger.Error("failed to list owned items", "owner", email, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// handleTopItems returns the newest items for the public landing page.
func (s *Server) handleTopItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListTopItems(r.Context(), topItemsLimit)
	if err != nil {
		s.logger.Error("failed to list top items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// handleGetItem fetches a single item. A malformed id behaves like a missing
// one: both are 404.
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	item, err := s.store.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		s.logger.Error("failed to get item", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// handleCreateItem inserts a new item owned by the caller. Any owner_email in
// the request body is overwritten with the verified claim.
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Price < 0 || req.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "price and quantity must be non-negative")
		return
	}

	item := &models.Item{
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Supplier:    req.Supplier,
		Description: req.Description,
		OwnerEmail:  middleware.GetEmail(r.Context()),
	}

	if err := s.store.CreateItem(r.Context(), item); err != nil {
		s.logger.Error("failed to create item", "owner", item.OwnerEmail, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	s.logger.Info("item created", "id", item.ID, "owner", item.OwnerEmail)
	writeJSON(w, http.StatusCreated, item)
}

// handleUpdateQuantity performs the partial update used by the restock flow:
// only the quantity field changes, everything else stays as stored.
func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "quantity is required")
		return
	}
	if *req.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "quantity must be non-negative")
		return
	}

	if s.enforceOwnership {
		if !s.callerOwnsItem(w, r, id) {
			return
		}
	}

	if err := s.store.UpdateItemQuantity(r.Context(), id, *req.Quantity); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		s.logger.Error("failed to update quantity", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"modifiedCount": 1})
}

// handleDeleteItem removes an item by id. The response is always a deletion
// count; deleting a missing or malformed id acknowledges zero deletions
// rather than failing.
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": 0})
		return
	}

	if s.enforceOwnership {
		item, err := s.store.GetItem(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			// Nothing to protect; keep the zero-count acknowledgment.
			writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": 0})
			return
		}
		if err != nil {
			s.logger.Error("failed to check item owner", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to check item owner")
			return
		}
		if item.OwnerEmail != middleware.GetEmail(r.Context()) {
			writeError(w, http.StatusForbidden, "not the item owner")
			return
		}
	}

	deleted, err := s.store.DeleteItem(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to delete item", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// handleItemSummary computes aggregate statistics over the entire item
// collection. Public: the storefront shows totals to everyone.
func (s *Server) handleItemSummary(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListItems(r.Context())
	if err != nil {
		s.logger.Error("failed to list items for summary", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	writeJSON(w, http.StatusOK, calculator.Summarize(items))
}

// callerOwnsItem resolves the item and verifies the caller's claim matches
// its owner, writing the appropriate response when it does not. Returns true
// only when the mutation may proceed.
func (s *Server) callerOwnsItem(w http.ResponseWriter, r *http.Request, id int64) bool {
	item, err := s.store.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return false
		}
		s.logger.Error("failed to check item owner", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to check item owner")
		return false
	}

	if item.OwnerEmail != middleware.GetEmail(r.Context()) {
		writeError(w, http.StatusForbidden, "not the item owner")
		return false
	}
	return true
}
