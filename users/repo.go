package users

import (
	"context"
	"errors"
)

var (
	// ErrDuplicate is returned by Create when the username is already taken.
	ErrDuplicate = errors.New("user already exists")
	// ErrNotFound is returned by lookups that match no account.
	ErrNotFound = errors.New("user not found")
)

// Repo is the primary-store surface for accounts. The primary store is
// authoritative for login and for the admin directory.
type Repo interface {
	// Create inserts the account and returns the store-assigned id.
	Create(ctx context.Context, user *User) (int, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// Mirror is the secondary-store surface for accounts. Registration writes
// through to it after the primary insert succeeds; nothing reads it back.
type Mirror interface {
	CreateUser(ctx context.Context, user *User) error
}
