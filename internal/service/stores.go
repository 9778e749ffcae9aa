package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kshiteeshhh/qkart-backend/pkg/events"
	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

// Store interfaces implemented by the pkg/mongo repositories. Lookups
// report absence through the bool so callers can tell "missing" from
// "store broken".

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, bool, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, bool, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
}

type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Product, bool, error)
}

type CartStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Cart, bool, error)
	Create(ctx context.Context, cart *models.Cart) error
	Save(ctx context.Context, cart *models.Cart) error
}

// ProductCache is implemented by pkg/redis. A nil cache disables caching.
type ProductCache interface {
	Get(ctx context.Context, id bson.ObjectID) (*models.Product, bool, error)
	Set(ctx context.Context, product *models.Product) error
}

// EventPublisher is implemented by pkg/events. A nil publisher disables
// event publishing.
type EventPublisher interface {
	PublishUserRegistered(event events.UserRegistered)
	PublishCheckoutCompleted(event events.CheckoutCompleted)
}
