package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

const productTTL = 24 * time.Hour

// ProductCache keeps JSON-serialized products keyed by their Mongo id.
// The catalog is read-heavy and effectively immutable at runtime, so a
// long TTL is fine.
type ProductCache struct {
	client *redis.Client
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func productKey(id bson.ObjectID) string {
	return fmt.Sprintf("product:%s", id.Hex())
}

// Get returns the cached product, or (nil, false, nil) on a cache miss.
func (c *ProductCache) Get(ctx context.Context, id bson.ObjectID) (*models.Product, bool, error) {
	productJSON, err := c.client.Get(ctx, productKey(id)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(productJSON), &product); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, true, nil
}

func (c *ProductCache) Set(ctx context.Context, product *models.Product) error {
	productJSON, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %s: %w", product.ID.Hex(), err)
	}

	if err := c.client.Set(ctx, productKey(product.ID), productJSON, productTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache product %s: %w", product.ID.Hex(), err)
	}

	return nil
}
