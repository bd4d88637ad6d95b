package mysqlrepo

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/pkg/errors"

	"github.com/stocktrail/stocktrail/inventory"
)

var _ inventory.Repo = (*Repo)(nil)

// Repo is the MySQL-backed inventory surface. Row ids are integers in the
// store and rendered as decimal strings at the boundary.
type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Insert(ctx context.Context, item inventory.Item) (string, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO inventory (user_id, item_name, description, quantity, price) VALUES (?, ?, ?, ?, ?)",
		item.OwnerID, item.Name, item.Description, item.Quantity, item.Price)
	if err != nil {
		return "", errors.Wrap(err, "[Repo.Insert] insert item")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", errors.Wrap(err, "[Repo.Insert] last insert id")
	}
	return strconv.FormatInt(id, 10), nil
}

func (r *Repo) ListByOwner(ctx context.Context, ownerID int) ([]inventory.Item, error) {
	return r.list(ctx,
		"SELECT id, user_id, item_name, description, quantity, price FROM inventory WHERE user_id = ? ORDER BY id",
		ownerID)
}

func (r *Repo) ListAll(ctx context.Context) ([]inventory.Item, error) {
	return r.list(ctx,
		"SELECT id, user_id, item_name, description, quantity, price FROM inventory ORDER BY id")
}

func (r *Repo) Get(ctx context.Context, id string) (inventory.Item, error) {
	rowID, ok := rowID(id)
	if !ok {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return r.get(ctx,
		"SELECT id, user_id, item_name, description, quantity, price FROM inventory WHERE id = ?",
		rowID)
}

func (r *Repo) GetByOwner(ctx context.Context, id string, ownerID int) (inventory.Item, error) {
	rowID, ok := rowID(id)
	if !ok {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return r.get(ctx,
		"SELECT id, user_id, item_name, description, quantity, price FROM inventory WHERE id = ? AND user_id = ?",
		rowID, ownerID)
}

func (r *Repo) Update(ctx context.Context, id string, ownerID int, item inventory.Item) error {
	rowID, ok := rowID(id)
	if !ok {
		return inventory.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE inventory SET item_name = ?, description = ?, quantity = ?, price = ? WHERE id = ? AND user_id = ?",
		item.Name, item.Description, item.Quantity, item.Price, rowID, ownerID)
	if err != nil {
		return errors.Wrap(err, "[Repo.Update] update item")
	}
	return requireMatch(res)
}

func (r *Repo) Delete(ctx context.Context, id string, ownerID int) error {
	rowID, ok := rowID(id)
	if !ok {
		return inventory.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM inventory WHERE id = ? AND user_id = ?", rowID, ownerID)
	if err != nil {
		return errors.Wrap(err, "[Repo.Delete] delete item")
	}
	return requireMatch(res)
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]inventory.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "[Repo.list] select items")
	}
	defer rows.Close()

	items := make([]inventory.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "[Repo.list] rows")
	}
	return items, nil
}

func (r *Repo) get(ctx context.Context, query string, args ...any) (inventory.Item, error) {
	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return inventory.Item{}, inventory.ErrNotFound
		}
		return inventory.Item{}, err
	}
	return item, nil
}

func scanItem(scan func(...any) error) (inventory.Item, error) {
	var item inventory.Item
	var rowID int64
	if err := scan(&rowID, &item.OwnerID, &item.Name, &item.Description, &item.Quantity, &item.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return inventory.Item{}, err
		}
		return inventory.Item{}, errors.Wrap(err, "[scanItem] scan item")
	}
	item.ID = strconv.FormatInt(rowID, 10)
	return item, nil
}

// rowID parses a canonical string id back into the store's integer key. An
// unparsable id cannot name any row.
func rowID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func requireMatch(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "[requireMatch] rows affected")
	}
	if affected == 0 {
		return inventory.ErrNotFound
	}
	return nil
}
