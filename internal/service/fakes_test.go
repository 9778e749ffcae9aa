package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kshiteeshhh/qkart-backend/pkg/apierror"
	"github.com/kshiteeshhh/qkart-backend/pkg/events"
	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

// In-memory stand-ins for the mongo repositories.

type fakeUserStore struct {
	users   map[string]*models.User
	findErr error
	saveErr error
	saves   int
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = bson.NewObjectID()
		}
		s.users[u.Email] = u
	}
	return s
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	if s.findErr != nil {
		return nil, false, s.findErr
	}
	u, ok := s.users[email]
	if !ok {
		return nil, false, nil
	}
	return u, true, nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, bool, error) {
	if s.findErr != nil {
		return nil, false, s.findErr
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return nil, false, nil
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	s.users[user.Email] = user
	return nil
}

func (s *fakeUserStore) Save(ctx context.Context, user *models.User) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.users[user.Email] = user
	return nil
}

type fakeProductStore struct {
	products map[bson.ObjectID]models.Product
	findErr  error
	finds    int
}

func newFakeProductStore(products ...models.Product) *fakeProductStore {
	s := &fakeProductStore{products: make(map[bson.ObjectID]models.Product)}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *fakeProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	all := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		all = append(all, p)
	}
	return all, nil
}

func (s *fakeProductStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Product, bool, error) {
	if s.findErr != nil {
		return nil, false, s.findErr
	}
	s.finds++
	p, ok := s.products[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

type fakeCartStore struct {
	carts     map[string]*models.Cart
	findErr   error
	createErr error
	saveErr   error
}

func newFakeCartStore(carts ...*models.Cart) *fakeCartStore {
	s := &fakeCartStore{carts: make(map[string]*models.Cart)}
	for _, c := range carts {
		if c.ID.IsZero() {
			c.ID = bson.NewObjectID()
		}
		s.carts[c.Email] = c
	}
	return s
}

func (s *fakeCartStore) FindByEmail(ctx context.Context, email string) (*models.Cart, bool, error) {
	if s.findErr != nil {
		return nil, false, s.findErr
	}
	c, ok := s.carts[email]
	if !ok {
		return nil, false, nil
	}
	return c, true, nil
}

func (s *fakeCartStore) Create(ctx context.Context, cart *models.Cart) error {
	if s.createErr != nil {
		return s.createErr
	}
	if cart.ID.IsZero() {
		cart.ID = bson.NewObjectID()
	}
	s.carts[cart.Email] = cart
	return nil
}

func (s *fakeCartStore) Save(ctx context.Context, cart *models.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.carts[cart.Email] = cart
	return nil
}

type fakeCache struct {
	items  map[bson.ObjectID]*models.Product
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[bson.ObjectID]*models.Product)}
}

func (c *fakeCache) Get(ctx context.Context, id bson.ObjectID) (*models.Product, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	p, ok := c.items[id]
	return p, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, product *models.Product) error {
	c.sets++
	c.items[product.ID] = product
	return nil
}

type fakePublisher struct {
	registered []events.UserRegistered
	checkouts  []events.CheckoutCompleted
}

func (p *fakePublisher) PublishUserRegistered(event events.UserRegistered) {
	p.registered = append(p.registered, event)
}

func (p *fakePublisher) PublishCheckoutCompleted(event events.CheckoutCompleted) {
	p.checkouts = append(p.checkouts, event)
}

// Fixtures.

func testUser(address string, wallet float64) *models.User {
	return &models.User{
		ID:          bson.NewObjectID(),
		Name:        "crio user",
		Email:       "crio-user@gmail.com",
		Address:     address,
		WalletMoney: wallet,
	}
}

func testProduct(name string, cost float64) models.Product {
	return models.Product{
		ID:       bson.NewObjectID(),
		Name:     name,
		Category: "Fashion",
		Cost:     cost,
		Rating:   5,
		Image:    "http://example.com/" + name + ".jpg",
	}
}

func assertAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *apierror.Error, got %T: %v", err, err)
	}
	if apiErr.Status != status {
		t.Errorf("status = %d, want %d", apiErr.Status, status)
	}
	if message != "" && apiErr.Message != message {
		t.Errorf("message = %q, want %q", apiErr.Message, message)
	}
}
