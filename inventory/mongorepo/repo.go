package mongorepo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stocktrail/stocktrail/inventory"
)

const inventoryCollection = "inventory"

var _ inventory.Repo = (*Repo)(nil)

// Repo is the document-store-backed inventory surface. Record ids are
// generated object ids, rendered in their hex form at the boundary.
type Repo struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Repo {
	return &Repo{col: db.Collection(inventoryCollection)}
}

// itemDoc is the stored document shape.
type itemDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     int                `bson:"user_id"`
	Name        string             `bson:"item_name"`
	Description string             `bson:"description"`
	Quantity    int                `bson:"quantity"`
	Price       float64            `bson:"price"`
}

func (d itemDoc) item() inventory.Item {
	return inventory.Item{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Description: d.Description,
		Quantity:    d.Quantity,
		Price:       d.Price,
	}
}

func (r *Repo) Insert(ctx context.Context, item inventory.Item) (string, error) {
	res, err := r.col.InsertOne(ctx, itemDoc{
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Price:       item.Price,
	})
	if err != nil {
		return "", errors.Wrap(err, "[Repo.Insert] insert item")
	}
	objectID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("[Repo.Insert] unexpected inserted id type")
	}
	return objectID.Hex(), nil
}

func (r *Repo) ListByOwner(ctx context.Context, ownerID int) ([]inventory.Item, error) {
	return r.list(ctx, bson.M{"user_id": ownerID})
}

func (r *Repo) ListAll(ctx context.Context) ([]inventory.Item, error) {
	return r.list(ctx, bson.M{})
}

func (r *Repo) Get(ctx context.Context, id string) (inventory.Item, error) {
	objectID, ok := objectID(id)
	if !ok {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *Repo) GetByOwner(ctx context.Context, id string, ownerID int) (inventory.Item, error) {
	objectID, ok := objectID(id)
	if !ok {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objectID, "user_id": ownerID})
}

func (r *Repo) Update(ctx context.Context, id string, ownerID int, item inventory.Item) error {
	objectID, ok := objectID(id)
	if !ok {
		return inventory.ErrNotFound
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": objectID, "user_id": ownerID},
		bson.M{"$set": bson.M{
			"item_name":   item.Name,
			"description": item.Description,
			"quantity":    item.Quantity,
			"price":       item.Price,
		}})
	if err != nil {
		return errors.Wrap(err, "[Repo.Update] update item")
	}
	if res.MatchedCount == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string, ownerID int) error {
	objectID, ok := objectID(id)
	if !ok {
		return inventory.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": ownerID})
	if err != nil {
		return errors.Wrap(err, "[Repo.Delete] delete item")
	}
	if res.DeletedCount == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

func (r *Repo) list(ctx context.Context, filter bson.M) ([]inventory.Item, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "[Repo.list] find items")
	}
	defer cur.Close(ctx)

	items := make([]inventory.Item, 0)
	for cur.Next(ctx) {
		var doc itemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "[Repo.list] decode item")
		}
		items = append(items, doc.item())
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "[Repo.list] cursor")
	}
	return items, nil
}

func (r *Repo) findOne(ctx context.Context, filter bson.M) (inventory.Item, error) {
	var doc itemDoc
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return inventory.Item{}, inventory.ErrNotFound
		}
		return inventory.Item{}, errors.Wrap(err, "[Repo.findOne] find item")
	}
	return doc.item(), nil
}

// objectID parses a canonical hex id back into an object id. A malformed id
// cannot name any document.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
