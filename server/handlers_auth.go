package server

import (
	"fmt"
	"net/http"

	"github.com/stocktrail/stocktrail/auth"
)

// RegisterHandler creates an account in both stores.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input auth.RegisterInput
		if !decodeJSON(w, r, &input) {
			return
		}

		if err := s.auth.Register(r.Context(), input); err != nil {
			respondServiceError(w, err, "")
			return
		}
		respondMessage(w, http.StatusCreated, "User registered successfully")
	}
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler authenticates against the primary store and sets the session
// cookie.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input loginInput
		if !decodeJSON(w, r, &input) {
			return
		}

		sessionID, sess, err := s.auth.Login(r.Context(), input.Username, input.Password)
		if err != nil {
			respondServiceError(w, err, "")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
		})
		respondMessage(w, http.StatusOK, fmt.Sprintf("Logged in as %s successfully", sess.Role))
	}
}

// LogoutHandler destroys the session and expires the cookie.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			sessionID = cookie.Value
		}

		if err := s.auth.Logout(sessionID); err != nil {
			respondServiceError(w, err, "")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
		respondMessage(w, http.StatusOK, "Logged out successfully")
	}
}
