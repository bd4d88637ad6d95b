package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrConflict is returned when the primary store rejects a new account,
	// typically a duplicate username.
	ErrConflict = errors.New("user already exists or invalid data")

	// ErrNoSession is returned by Logout when there is nothing to destroy.
	ErrNoSession = errors.New("no active session found")
)
