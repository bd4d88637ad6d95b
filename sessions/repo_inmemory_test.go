package sessions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stocktrail/stocktrail/sessions"
	"github.com/stocktrail/stocktrail/users"
)

func TestInMemoryRepoLifecycle(t *testing.T) {
	repo := sessions.NewInMemoryRepo()
	sess := sessions.Session{AccountID: 1, Username: "alice", Role: users.RoleUser}

	id, err := repo.Create(sess)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(id)
	require.NoError(t, err)
	require.Equal(t, sess, got)

	require.NoError(t, repo.Delete(id))

	_, err = repo.Get(id)
	require.ErrorIs(t, err, sessions.ErrNotFound)
}

func TestInMemoryRepoIssuesDistinctIDs(t *testing.T) {
	repo := sessions.NewInMemoryRepo()

	first, err := repo.Create(sessions.Session{AccountID: 1, Username: "alice", Role: users.RoleUser})
	require.NoError(t, err)
	second, err := repo.Create(sessions.Session{AccountID: 1, Username: "alice", Role: users.RoleUser})
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestInMemoryRepoDeleteMissing(t *testing.T) {
	repo := sessions.NewInMemoryRepo()
	require.ErrorIs(t, repo.Delete("no-such-session"), sessions.ErrNotFound)
}
