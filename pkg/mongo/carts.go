package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

// CartRepository owns the carts collection, one document per user keyed by
// email. Writes are full-document replaces; the store's per-document
// atomicity is the only concurrency control (last write wins).
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection("carts")}
}

func (r *CartRepository) FindByEmail(ctx context.Context, email string) (*models.Cart, bool, error) {
	var cart models.Cart
	err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &cart, true, nil
}

func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, cart)
	return err
}

func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	_, err := r.col.ReplaceOne(ctx, bson.D{{Key: "_id", Value: cart.ID}}, cart)
	return err
}
