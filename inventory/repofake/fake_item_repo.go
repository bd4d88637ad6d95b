package fakeitemrepo

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/stocktrail/stocktrail/inventory"
)

var _ inventory.Repo = (*FakeItemRepo)(nil)

// FakeItemRepo is an in-memory inventory backend for tests. Ids are assigned
// sequentially and rendered as decimal strings like the row store's.
type FakeItemRepo struct {
	lock   sync.RWMutex
	items  map[string]inventory.Item
	nextID int
}

func NewFakeItemRepo() *FakeItemRepo {
	return &FakeItemRepo{
		items:  make(map[string]inventory.Item),
		nextID: 1,
	}
}

func (ir *FakeItemRepo) Insert(_ context.Context, item inventory.Item) (string, error) {
	ir.lock.Lock()
	defer ir.lock.Unlock()

	item.ID = strconv.Itoa(ir.nextID)
	ir.nextID++
	ir.items[item.ID] = item
	return item.ID, nil
}

func (ir *FakeItemRepo) ListByOwner(_ context.Context, ownerID int) ([]inventory.Item, error) {
	return ir.listWhere(func(item inventory.Item) bool { return item.OwnerID == ownerID }), nil
}

func (ir *FakeItemRepo) ListAll(_ context.Context) ([]inventory.Item, error) {
	return ir.listWhere(func(inventory.Item) bool { return true }), nil
}

func (ir *FakeItemRepo) Get(_ context.Context, id string) (inventory.Item, error) {
	ir.lock.RLock()
	defer ir.lock.RUnlock()

	item, ok := ir.items[id]
	if !ok {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return item, nil
}

func (ir *FakeItemRepo) GetByOwner(_ context.Context, id string, ownerID int) (inventory.Item, error) {
	ir.lock.RLock()
	defer ir.lock.RUnlock()

	item, ok := ir.items[id]
	if !ok || item.OwnerID != ownerID {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return item, nil
}

func (ir *FakeItemRepo) Update(_ context.Context, id string, ownerID int, item inventory.Item) error {
	ir.lock.Lock()
	defer ir.lock.Unlock()

	existing, ok := ir.items[id]
	if !ok || existing.OwnerID != ownerID {
		return inventory.ErrNotFound
	}
	item.ID = id
	item.OwnerID = existing.OwnerID
	ir.items[id] = item
	return nil
}

func (ir *FakeItemRepo) Delete(_ context.Context, id string, ownerID int) error {
	ir.lock.Lock()
	defer ir.lock.Unlock()

	existing, ok := ir.items[id]
	if !ok || existing.OwnerID != ownerID {
		return inventory.ErrNotFound
	}
	delete(ir.items, id)
	return nil
}

func (ir *FakeItemRepo) listWhere(keep func(inventory.Item) bool) []inventory.Item {
	ir.lock.RLock()
	defer ir.lock.RUnlock()

	items := make([]inventory.Item, 0)
	for _, item := range ir.items {
		if keep(item) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
