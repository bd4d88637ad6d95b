package mysqlrepo

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/stocktrail/stocktrail/users"
)

const mysqlErrDuplicateEntry = 1062

var _ users.Repo = (*Repo)(nil)

// Repo is the MySQL-backed primary account store.
type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, user *users.User) (int, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, email, role) VALUES (?, ?, ?, ?)",
		user.Username, user.PasswordHash, user.Email, user.Role)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, users.ErrDuplicate
		}
		return 0, errors.Wrap(err, "[Repo.Create] insert user")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "[Repo.Create] last insert id")
	}
	user.ID = int(id)
	return user.ID, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	u := &users.User{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, email, role FROM users WHERE username = ?",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, errors.Wrap(err, "[Repo.GetByUsername] select user")
	}
	return u, nil
}

// List returns every account without its password hash, ordered by id.
func (r *Repo) List(ctx context.Context) ([]*users.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, username, email, role FROM users ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "[Repo.List] select users")
	}
	defer rows.Close()

	list := make([]*users.User, 0)
	for rows.Next() {
		u := &users.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role); err != nil {
			return nil, errors.Wrap(err, "[Repo.List] scan user")
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "[Repo.List] rows")
	}
	return list, nil
}
