package service

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kshiteeshhh/qkart-backend/pkg/apierror"
	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

// ProductService serves the read-only catalog. By-identity lookups go
// through the cache first; cache failures fall back to Mongo.
type ProductService struct {
	products ProductStore
	cache    ProductCache
}

func NewProductService(products ProductStore, cache ProductCache) *ProductService {
	return &ProductService{products: products, cache: cache}
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, apierror.NewInternal("Failed to fetch products", err)
	}
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			log.Printf("Product cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	product, found, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewInternal("Failed to fetch product", err)
	}
	if !found {
		return nil, apierror.NewNotFound("Product not found")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, product); err != nil {
			log.Printf("Product cache write failed: %v", err)
		}
	}

	return product, nil
}
