package mongorepo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stocktrail/stocktrail/users"
)

const usersCollection = "users"

var _ users.Mirror = (*Repo)(nil)

// Repo mirrors accounts into the document store. It is write-only: login and
// the admin directory always read the primary store.
type Repo struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Repo {
	return &Repo{col: db.Collection(usersCollection)}
}

func (r *Repo) CreateUser(ctx context.Context, user *users.User) error {
	_, err := r.col.InsertOne(ctx, bson.M{
		"user_id":       user.ID,
		"username":      user.Username,
		"password_hash": user.PasswordHash,
		"email":         user.Email,
		"role":          user.Role,
	})
	if err != nil {
		return errors.Wrap(err, "[Repo.CreateUser] insert mirrored user")
	}
	return nil
}
