package server

import (
	"net/http"
)

// ListUsersHandler returns every account's directory entry from the primary
// store. The secondary mirror is never consulted and password hashes are
// excluded by the model's serialization.
func (s *Server) ListUsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.users.List(r.Context())
		if err != nil {
			respondServiceError(w, err, "")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"users": list})
	}
}

// OwnInventoryHandler is the user-facing view of the caller's own rows in
// the primary store.
func (s *Server) OwnInventoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())

		items, err := s.rowItems.List(r.Context(), sess)
		if err != nil {
			respondServiceError(w, err, "")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"inventory": items})
	}
}
