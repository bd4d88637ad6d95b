package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stocktrail/stocktrail/inventory"
)

// CreateItemHandler persists a new record owned by the acting account and
// returns the store-assigned id in canonical string form.
func (s *Server) CreateItemHandler(svc *inventory.Service, b backend) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())

		var input inventory.ItemInput
		if !decodeJSON(w, r, &input) {
			return
		}

		id, err := svc.Create(r.Context(), sess, input)
		if err != nil {
			respondServiceError(w, err, "")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]string{
			"message": b.createdIn,
			"id":      id,
		})
	}
}

// ListItemsHandler returns the records visible to the session under the
// surface's read scope.
func (s *Server) ListItemsHandler(svc *inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())

		items, err := svc.List(r.Context(), sess)
		if err != nil {
			respondServiceError(w, err, "")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

func (s *Server) GetItemHandler(svc *inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())

		item, err := svc.Get(r.Context(), sess, chi.URLParam(r, "itemID"))
		if err != nil {
			respondServiceError(w, err, "Item not found")
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

func (s *Server) UpdateItemHandler(svc *inventory.Service, b backend) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())

		var input inventory.ItemInput
		if !decodeJSON(w, r, &input) {
			return
		}

		if err := svc.Update(r.Context(), sess, chi.URLParam(r, "itemID"), input); err != nil {
			respondServiceError(w, err, "Item not found or unauthorized")
			return
		}
		respondMessage(w, http.StatusOK, b.updatedIn)
	}
}

func (s *Server) DeleteItemHandler(svc *inventory.Service, b backend) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())

		if err := svc.Delete(r.Context(), sess, chi.URLParam(r, "itemID")); err != nil {
			respondServiceError(w, err, "Item not found or unauthorized")
			return
		}
		respondMessage(w, http.StatusOK, b.deletedFrom)
	}
}
