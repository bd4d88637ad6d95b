package fakeuserrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/stocktrail/stocktrail/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

// FakeUserRepo is an in-memory stand-in for the primary account store.
// IDs are assigned sequentially to match the row store's numeric keys.
type FakeUserRepo struct {
	lock      sync.RWMutex
	accounts  map[int]*users.User
	usernames map[string]int // username to account id
	nextID    int
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		accounts:  make(map[int]*users.User),
		usernames: make(map[string]int),
		nextID:    1,
	}
}

func (ur *FakeUserRepo) Create(_ context.Context, user *users.User) (int, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.usernames[user.Username]; ok {
		return 0, users.ErrDuplicate
	}

	user.ID = ur.nextID
	ur.nextID++

	stored := *user
	ur.accounts[user.ID] = &stored
	ur.usernames[user.Username] = user.ID
	return user.ID, nil
}

func (ur *FakeUserRepo) GetByUsername(_ context.Context, username string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.usernames[username]
	if !ok {
		return nil, users.ErrNotFound
	}
	found := *ur.accounts[id]
	return &found, nil
}

func (ur *FakeUserRepo) List(_ context.Context) ([]*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	list := make([]*users.User, 0, len(ur.accounts))
	for _, u := range ur.accounts {
		found := *u
		list = append(list, &found)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

var _ users.Mirror = (*FakeMirror)(nil)

// FakeMirror records mirrored accounts and can be forced to fail, which the
// registration tests use to exercise the accepted inconsistency window.
type FakeMirror struct {
	lock     sync.Mutex
	Accounts []*users.User
	FailWith error // when set, CreateUser returns this error
}

func NewFakeMirror() *FakeMirror {
	return &FakeMirror{}
}

func (m *FakeMirror) CreateUser(_ context.Context, user *users.User) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}
	stored := *user
	m.Accounts = append(m.Accounts, &stored)
	return nil
}
