package inventory

import (
	"context"

	"github.com/pkg/errors"

	"github.com/stocktrail/stocktrail/internal/apperrors"
	"github.com/stocktrail/stocktrail/sessions"
	"github.com/stocktrail/stocktrail/users"
)

// ReadScope selects which records reads return for a given role. The two
// backends ship with different policies and the difference is a documented
// product decision, so it is a named wiring-time constant rather than two
// divergent code paths.
type ReadScope int

const (
	// ReadScopeOwner scopes reads to the acting account's own records
	// regardless of role. The row-store surface uses this.
	ReadScopeOwner ReadScope = iota
	// ReadScopeRoleSplit gives admins only their own records but gives users
	// visibility into every record. The document-store surface uses this.
	ReadScopeRoleSplit
)

// Service is the ownership-scoped CRUD core, instantiated once per backend.
// Role gates live at the HTTP boundary; the service owns validation,
// ownership stamping, and read visibility.
type Service struct {
	repo  Repo
	scope ReadScope
}

// NewService wires a backend repository to a read-visibility policy.
func NewService(repo Repo, scope ReadScope) (*Service, error) {
	if repo == nil {
		return nil, errors.New("[NewService] item repo is required")
	}
	return &Service{repo: repo, scope: scope}, nil
}

// Create validates the payload and persists it owned by the acting account,
// returning the new record's id.
func (s *Service) Create(ctx context.Context, sess sessions.Session, in ItemInput) (string, error) {
	if err := apperrors.Validation(in.Validate()); err != nil {
		return "", err
	}
	id, err := s.repo.Insert(ctx, in.item(sess.AccountID))
	if err != nil {
		return "", errors.Wrap(err, "[Service.Create] insert item")
	}
	return id, nil
}

// List returns the records visible to the session under the read scope.
func (s *Service) List(ctx context.Context, sess sessions.Session) ([]Item, error) {
	if s.readsAll(sess) {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, sess.AccountID)
}

// Get returns a single visible record, or ErrNotFound.
func (s *Service) Get(ctx context.Context, sess sessions.Session, id string) (Item, error) {
	if s.readsAll(sess) {
		return s.repo.Get(ctx, id)
	}
	return s.repo.GetByOwner(ctx, id, sess.AccountID)
}

// Update validates the payload and rewrites the record if the acting account
// owns it. Ownership is by account identity, not role: an admin cannot touch
// another admin's record.
func (s *Service) Update(ctx context.Context, sess sessions.Session, id string, in ItemInput) error {
	if err := apperrors.Validation(in.Validate()); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, sess.AccountID, in.item(sess.AccountID))
}

// Delete removes the record under the same owner-matching rule as Update.
func (s *Service) Delete(ctx context.Context, sess sessions.Session, id string) error {
	return s.repo.Delete(ctx, id, sess.AccountID)
}

func (s *Service) readsAll(sess sessions.Session) bool {
	return s.scope == ReadScopeRoleSplit && sess.Role == users.RoleUser
}
