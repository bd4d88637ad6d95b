package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stocktrail/stocktrail/auth"
	"github.com/stocktrail/stocktrail/internal/apperrors"
	"github.com/stocktrail/stocktrail/inventory"
)

const contentTypeJSON = "application/json; charset=utf-8"

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondServiceError maps the error taxonomy to the wire in one place.
// notFoundMsg varies by operation: reads say "Item not found", writes say
// "Item not found or unauthorized" because an ownership mismatch must be
// indistinguishable from absence.
func respondServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	var validation *apperrors.ValidationError
	switch {
	case errors.As(err, &validation):
		respondJSON(w, http.StatusBadRequest, map[string]any{"errors": validation.Messages})
	case errors.Is(err, auth.ErrConflict):
		respondError(w, http.StatusBadRequest, "User already exists or invalid data.")
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid username or password.")
	case errors.Is(err, auth.ErrNoSession):
		respondError(w, http.StatusBadRequest, "No active session found")
	case errors.Is(err, inventory.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMsg)
	default:
		log.Error().Err(err).Msg("unhandled service error")
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads one JSON body. Decode failures are client errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	return true
}
