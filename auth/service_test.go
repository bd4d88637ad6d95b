package auth_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/stocktrail/stocktrail/auth"
	"github.com/stocktrail/stocktrail/internal/apperrors"
	"github.com/stocktrail/stocktrail/sessions"
	"github.com/stocktrail/stocktrail/users"
	fakeuserrepo "github.com/stocktrail/stocktrail/users/repofake"
)

const (
	testUsername = "alice"
	testPassword = "abc123"
	testEmail    = "a@b.com"
)

type testFixture struct {
	userRepo    *fakeuserrepo.FakeUserRepo
	mirror      *fakeuserrepo.FakeMirror
	sessionRepo sessions.Repo
	service     *auth.Service
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	ur := fakeuserrepo.NewFakeUserRepo()
	mr := fakeuserrepo.NewFakeMirror()
	sr := sessions.NewInMemoryRepo()

	service, err := auth.NewService(auth.Repos{
		Users:    ur,
		Mirror:   mr,
		Sessions: sr,
	})
	require.NoError(t, err)

	return &testFixture{
		userRepo:    ur,
		mirror:      mr,
		sessionRepo: sr,
		service:     service,
	}
}

func (f *testFixture) register(t *testing.T, in auth.RegisterInput) {
	t.Helper()
	require.NoError(t, f.service.Register(context.Background(), in))
}

func TestRegisterValidation(t *testing.T) {
	valid := auth.RegisterInput{
		Username: testUsername,
		Password: testPassword,
		Email:    testEmail,
	}

	tests := []struct {
		name     string
		mutate   func(*auth.RegisterInput)
		expected []string
	}{
		{
			name:     "short username",
			mutate:   func(in *auth.RegisterInput) { in.Username = "al" },
			expected: []string{"Username must be at least 3 characters long."},
		},
		{
			name:     "short password",
			mutate:   func(in *auth.RegisterInput) { in.Password = "a1" },
			expected: []string{"Password must be at least 6 characters long."},
		},
		{
			name:     "password without digits",
			mutate:   func(in *auth.RegisterInput) { in.Password = "abcdef" },
			expected: []string{"Password must contain at least one letter and one number."},
		},
		{
			name:     "password without letters",
			mutate:   func(in *auth.RegisterInput) { in.Password = "123456" },
			expected: []string{"Password must contain at least one letter and one number."},
		},
		{
			name:     "invalid email",
			mutate:   func(in *auth.RegisterInput) { in.Email = "not-an-email" },
			expected: []string{"Invalid email address."},
		},
		{
			name:     "unknown role",
			mutate:   func(in *auth.RegisterInput) { in.Role = "owner" },
			expected: []string{"Role must be either 'admin' or 'user'."},
		},
		{
			name:   "everything missing",
			mutate: func(in *auth.RegisterInput) { *in = auth.RegisterInput{} },
			expected: []string{
				"Username must be at least 3 characters long.",
				"Password must be at least 6 characters long.",
				"Invalid email address.",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := setupTestFixture(t)

			in := valid
			tc.mutate(&in)

			err := f.service.Register(context.Background(), in)
			require.Error(t, err)

			var validation *apperrors.ValidationError
			require.ErrorAs(t, err, &validation)
			require.Equal(t, tc.expected, validation.Messages)

			// No partial writes on a validation failure.
			list, listErr := f.userRepo.List(context.Background())
			require.NoError(t, listErr)
			require.Empty(t, list)
			require.Empty(t, f.mirror.Accounts)
		})
	}
}

func TestRegisterWritesBothStores(t *testing.T) {
	f := setupTestFixture(t)

	f.register(t, auth.RegisterInput{Username: testUsername, Password: testPassword, Email: testEmail})

	stored, err := f.userRepo.GetByUsername(context.Background(), testUsername)
	require.NoError(t, err)
	require.Equal(t, testEmail, stored.Email)
	require.Equal(t, users.RoleUser, stored.Role)
	require.NotEqual(t, testPassword, stored.PasswordHash)
	require.True(t, users.CheckPasswordHash(testPassword, stored.PasswordHash))

	require.Len(t, f.mirror.Accounts, 1)
	mirrored := f.mirror.Accounts[0]
	require.Equal(t, stored.Username, mirrored.Username)
	require.Equal(t, stored.Email, mirrored.Email)
	require.Equal(t, stored.Role, mirrored.Role)
	require.Equal(t, stored.PasswordHash, mirrored.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := setupTestFixture(t)

	f.register(t, auth.RegisterInput{Username: testUsername, Password: testPassword, Email: testEmail})

	err := f.service.Register(context.Background(), auth.RegisterInput{
		Username: testUsername,
		Password: "other99",
		Email:    "other@b.com",
	})
	require.ErrorIs(t, err, auth.ErrConflict)

	// Exactly one account left behind, and no second mirror write.
	list, err := f.userRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, f.mirror.Accounts, 1)
}

func TestRegisterMirrorFailureStillSucceeds(t *testing.T) {
	f := setupTestFixture(t)
	f.mirror.FailWith = errors.New("mongo unavailable")

	err := f.service.Register(context.Background(), auth.RegisterInput{
		Username: testUsername,
		Password: testPassword,
		Email:    testEmail,
	})
	require.NoError(t, err)

	_, err = f.userRepo.GetByUsername(context.Background(), testUsername)
	require.NoError(t, err)
	require.Empty(t, f.mirror.Accounts)
}

func TestLogin(t *testing.T) {
	f := setupTestFixture(t)
	f.register(t, auth.RegisterInput{
		Username: testUsername,
		Password: testPassword,
		Email:    testEmail,
		Role:     "admin",
	})

	t.Run("success binds the stored role", func(t *testing.T) {
		sessionID, sess, err := f.service.Login(context.Background(), testUsername, testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, sessionID)
		require.Equal(t, users.RoleAdmin, sess.Role)
		require.Equal(t, testUsername, sess.Username)

		stored, err := f.sessionRepo.Get(sessionID)
		require.NoError(t, err)
		require.Equal(t, sess, stored)
	})

	t.Run("wrong password and unknown user collapse to one error", func(t *testing.T) {
		_, _, wrongPassword := f.service.Login(context.Background(), testUsername, "wrong99")
		_, _, unknownUser := f.service.Login(context.Background(), "nobody", testPassword)

		require.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
		require.ErrorIs(t, unknownUser, auth.ErrInvalidCredentials)
		require.Equal(t, wrongPassword.Error(), unknownUser.Error())
	})

	t.Run("missing fields collect all messages", func(t *testing.T) {
		_, _, err := f.service.Login(context.Background(), "", "")

		var validation *apperrors.ValidationError
		require.ErrorAs(t, err, &validation)
		require.Equal(t, []string{"Username is required.", "Password is required."}, validation.Messages)
	})
}

func TestLogout(t *testing.T) {
	f := setupTestFixture(t)
	f.register(t, auth.RegisterInput{Username: testUsername, Password: testPassword, Email: testEmail})

	t.Run("without a session", func(t *testing.T) {
		require.ErrorIs(t, f.service.Logout(""), auth.ErrNoSession)
		require.ErrorIs(t, f.service.Logout("unknown-session"), auth.ErrNoSession)
	})

	t.Run("destroys the session once", func(t *testing.T) {
		sessionID, _, err := f.service.Login(context.Background(), testUsername, testPassword)
		require.NoError(t, err)

		require.NoError(t, f.service.Logout(sessionID))

		_, err = f.sessionRepo.Get(sessionID)
		require.ErrorIs(t, err, sessions.ErrNotFound)
		require.ErrorIs(t, f.service.Logout(sessionID), auth.ErrNoSession)
	})
}
