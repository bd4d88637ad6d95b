package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stocktrail/stocktrail/internal/apperrors"
	"github.com/stocktrail/stocktrail/inventory"
	fakeitemrepo "github.com/stocktrail/stocktrail/inventory/repofake"
	"github.com/stocktrail/stocktrail/sessions"
	"github.com/stocktrail/stocktrail/users"
)

var (
	adminOne = sessions.Session{AccountID: 1, Username: "admin1", Role: users.RoleAdmin}
	adminTwo = sessions.Session{AccountID: 2, Username: "admin2", Role: users.RoleAdmin}
	userOne  = sessions.Session{AccountID: 3, Username: "user1", Role: users.RoleUser}
)

func floatPtr(f float64) *float64 { return &f }

func validInput() inventory.ItemInput {
	return inventory.ItemInput{
		Name:     "ThinkPad X1",
		Quantity: floatPtr(3),
		Price:    floatPtr(9.5),
	}
}

func newService(t *testing.T, scope inventory.ReadScope) (*inventory.Service, *fakeitemrepo.FakeItemRepo) {
	t.Helper()
	repo := fakeitemrepo.NewFakeItemRepo()
	svc, err := inventory.NewService(repo, scope)
	require.NoError(t, err)
	return svc, repo
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*inventory.ItemInput)
		expected []string
	}{
		{
			name:     "missing name",
			mutate:   func(in *inventory.ItemInput) { in.Name = "" },
			expected: []string{"Item name is required."},
		},
		{
			name:     "zero quantity",
			mutate:   func(in *inventory.ItemInput) { in.Quantity = floatPtr(0) },
			expected: []string{"Quantity must be a positive integer."},
		},
		{
			name:     "fractional quantity",
			mutate:   func(in *inventory.ItemInput) { in.Quantity = floatPtr(2.5) },
			expected: []string{"Quantity must be a positive integer."},
		},
		{
			name:     "missing quantity",
			mutate:   func(in *inventory.ItemInput) { in.Quantity = nil },
			expected: []string{"Quantity must be a positive integer."},
		},
		{
			name:     "non-positive price",
			mutate:   func(in *inventory.ItemInput) { in.Price = floatPtr(0) },
			expected: []string{"Price must be a positive number."},
		},
		{
			name: "everything wrong at once",
			mutate: func(in *inventory.ItemInput) {
				*in = inventory.ItemInput{}
			},
			expected: []string{
				"Item name is required.",
				"Quantity must be a positive integer.",
				"Price must be a positive number.",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newService(t, inventory.ReadScopeOwner)

			in := validInput()
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), adminOne, in)

			var validation *apperrors.ValidationError
			require.ErrorAs(t, err, &validation)
			require.Equal(t, tc.expected, validation.Messages)

			all, listErr := repo.ListAll(context.Background())
			require.NoError(t, listErr)
			require.Empty(t, all)
		})
	}
}

func TestCreateStampsOwner(t *testing.T) {
	svc, repo := newService(t, inventory.ReadScopeOwner)

	id, err := svc.Create(context.Background(), adminOne, validInput())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, adminOne.AccountID, stored.OwnerID)
	require.Equal(t, "ThinkPad X1", stored.Name)
	require.Equal(t, 3, stored.Quantity)
	require.Equal(t, 9.5, stored.Price)
	require.Equal(t, "", stored.Description)
}

func TestOwnershipGatesWrites(t *testing.T) {
	svc, repo := newService(t, inventory.ReadScopeOwner)

	id, err := svc.Create(context.Background(), adminOne, validInput())
	require.NoError(t, err)

	t.Run("update by a different admin is not found", func(t *testing.T) {
		in := validInput()
		in.Name = "hijacked"

		err := svc.Update(context.Background(), adminTwo, id, in)
		require.ErrorIs(t, err, inventory.ErrNotFound)

		stored, getErr := repo.Get(context.Background(), id)
		require.NoError(t, getErr)
		require.Equal(t, "ThinkPad X1", stored.Name)
	})

	t.Run("delete by a different admin is not found", func(t *testing.T) {
		err := svc.Delete(context.Background(), adminTwo, id)
		require.ErrorIs(t, err, inventory.ErrNotFound)

		_, getErr := repo.Get(context.Background(), id)
		require.NoError(t, getErr)
	})

	t.Run("missing id is indistinguishable from foreign ownership", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(context.Background(), adminOne, "999"), inventory.ErrNotFound)
	})

	t.Run("owner can update and delete", func(t *testing.T) {
		in := validInput()
		in.Name = "ThinkPad X1 Carbon"
		require.NoError(t, svc.Update(context.Background(), adminOne, id, in))

		stored, err := repo.Get(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, "ThinkPad X1 Carbon", stored.Name)
		require.Equal(t, adminOne.AccountID, stored.OwnerID)

		require.NoError(t, svc.Delete(context.Background(), adminOne, id))
	})
}

func TestReadScopeOwner(t *testing.T) {
	svc, _ := newService(t, inventory.ReadScopeOwner)

	ownID, err := svc.Create(context.Background(), adminOne, validInput())
	require.NoError(t, err)
	foreignID, err := svc.Create(context.Background(), adminTwo, validInput())
	require.NoError(t, err)

	t.Run("list returns only the caller's records", func(t *testing.T) {
		items, err := svc.List(context.Background(), adminOne)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, ownID, items[0].ID)
	})

	t.Run("get hides foreign records regardless of role", func(t *testing.T) {
		_, err := svc.Get(context.Background(), adminOne, foreignID)
		require.ErrorIs(t, err, inventory.ErrNotFound)
	})
}

func TestReadScopeRoleSplit(t *testing.T) {
	svc, _ := newService(t, inventory.ReadScopeRoleSplit)

	adminOwnID, err := svc.Create(context.Background(), adminOne, validInput())
	require.NoError(t, err)
	foreignID, err := svc.Create(context.Background(), adminTwo, validInput())
	require.NoError(t, err)

	t.Run("admins see only their own records", func(t *testing.T) {
		items, err := svc.List(context.Background(), adminOne)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, adminOwnID, items[0].ID)

		_, err = svc.Get(context.Background(), adminOne, foreignID)
		require.ErrorIs(t, err, inventory.ErrNotFound)
	})

	t.Run("users see every record", func(t *testing.T) {
		items, err := svc.List(context.Background(), userOne)
		require.NoError(t, err)
		require.Len(t, items, 2)

		item, err := svc.Get(context.Background(), userOne, foreignID)
		require.NoError(t, err)
		require.Equal(t, adminTwo.AccountID, item.OwnerID)
	})
}
