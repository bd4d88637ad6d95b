package inventory

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record matches an id within the scope the
// caller is allowed to touch. An ownership mismatch is deliberately
// indistinguishable from absence.
var ErrNotFound = errors.New("item not found")

// Repo is the persistence surface shared by both inventory backends. IDs are
// canonical strings; an id that cannot exist in a backend (a non-numeric id
// for the row store, a malformed object id for the document store) resolves
// to ErrNotFound rather than an error of its own.
type Repo interface {
	// Insert persists the item and returns the store-assigned id.
	Insert(ctx context.Context, item Item) (string, error)
	ListByOwner(ctx context.Context, ownerID int) ([]Item, error)
	ListAll(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	GetByOwner(ctx context.Context, id string, ownerID int) (Item, error)
	// Update rewrites the record only when an owner-matching row with that id
	// exists, returning ErrNotFound otherwise.
	Update(ctx context.Context, id string, ownerID int, item Item) error
	// Delete removes the record under the same owner-matching rule as Update.
	Delete(ctx context.Context, id string, ownerID int) error
}
