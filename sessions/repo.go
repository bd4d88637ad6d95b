package sessions

import "errors"

// ErrNotFound is returned when no session exists for an id.
var ErrNotFound = errors.New("session not found")

// Repo stores active sessions keyed by an opaque id.
type Repo interface {
	// Create stores the session and returns its new id.
	Create(session Session) (string, error)
	Get(sessionID string) (Session, error)
	// Delete removes the session, returning ErrNotFound if it does not exist.
	Delete(sessionID string) error
}
