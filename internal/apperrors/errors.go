// Package apperrors holds the error taxonomy shared by the service layer and
// the HTTP boundary. Every request either succeeds or resolves to exactly one
// of these, which the server maps to a status code in one place.
package apperrors

import "strings"

// ValidationError carries every rule violated by one request payload.
// Validation never fails fast: all messages are collected before any
// persistence is attempted.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Validation wraps a non-empty message list in a ValidationError, or returns
// nil when nothing was violated.
func Validation(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
