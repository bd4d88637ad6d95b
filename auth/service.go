package auth

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/stocktrail/stocktrail/internal/apperrors"
	"github.com/stocktrail/stocktrail/sessions"
	"github.com/stocktrail/stocktrail/users"
)

// Repos holds all repository dependencies for the Service.
type Repos struct {
	Users    users.Repo   // Primary account store, authoritative for login
	Mirror   users.Mirror // Secondary account store, written through on registration
	Sessions sessions.Repo
}

// Service implements registration, login, and logout. Registration writes
// the new account to both stores; all reads go to the primary store.
type Service struct {
	repos Repos
}

// NewService initializes a new Service with required dependencies.
func NewService(repos Repos) (*Service, error) {
	if repos.Users == nil {
		return nil, errors.New("[NewService] Users repo is required")
	}
	if repos.Mirror == nil {
		return nil, errors.New("[NewService] Mirror repo is required")
	}
	if repos.Sessions == nil {
		return nil, errors.New("[NewService] Sessions repo is required")
	}
	return &Service{repos: repos}, nil
}

// RegisterInput is the raw registration payload. Role defaults to "user"
// when empty.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Register validates the input, hashes the password, and inserts the account
// into the primary store followed by the secondary mirror. A primary failure
// surfaces as ErrConflict with no mirror write attempted. A mirror failure
// after primary success is logged and swallowed: the stores are allowed to
// diverge until the mirror catches up out of band.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	if err := apperrors.Validation(validateRegistration(in)); err != nil {
		return err
	}

	role := users.Role(in.Role)
	if role == "" {
		role = users.RoleUser
	}

	hash, err := users.HashPassword(in.Password)
	if err != nil {
		return errors.Wrap(err, "[Service.Register] hash password")
	}

	user := &users.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if _, err := s.repos.Users.Create(ctx, user); err != nil {
		return errors.Wrap(ErrConflict, err.Error())
	}

	if err := s.repos.Mirror.CreateUser(ctx, user); err != nil {
		log.Warn().
			Err(err).
			Str("username", user.Username).
			Msg("secondary store write failed after primary insert; stores are inconsistent")
	}

	return nil
}

// Login authenticates against the primary store only and establishes a
// session. Unknown username and wrong password collapse to the same error.
func (s *Service) Login(ctx context.Context, username, password string) (string, sessions.Session, error) {
	if err := apperrors.Validation(validateLogin(username, password)); err != nil {
		return "", sessions.Session{}, err
	}

	user, err := s.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", sessions.Session{}, ErrInvalidCredentials
		}
		return "", sessions.Session{}, errors.Wrap(err, "[Service.Login] GetByUsername")
	}

	if !users.CheckPasswordHash(password, user.PasswordHash) {
		return "", sessions.Session{}, ErrInvalidCredentials
	}

	session := sessions.Session{
		AccountID: user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}
	sessionID, err := s.repos.Sessions.Create(session)
	if err != nil {
		return "", sessions.Session{}, errors.Wrap(err, "[Service.Login] create session")
	}
	return sessionID, session, nil
}

// Logout destroys the session. Without one it fails with ErrNoSession.
func (s *Service) Logout(sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	if err := s.repos.Sessions.Delete(sessionID); err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return ErrNoSession
		}
		return errors.Wrap(err, "[Service.Logout] delete session")
	}
	return nil
}
