package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kshiteeshhh/qkart-backend/pkg/apierror"
	"github.com/kshiteeshhh/qkart-backend/pkg/events"
	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

// CartService implements cart mutation and checkout. Carts are keyed by
// the owner's email and created lazily on first add. Line items embed a
// product snapshot taken at add time; later catalog changes never
// re-price an existing line.
type CartService struct {
	carts    CartStore
	products ProductStore
	users    UserStore
	events   EventPublisher
}

func NewCartService(carts CartStore, products ProductStore, users UserStore, publisher EventPublisher) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		users:    users,
		events:   publisher,
	}
}

func (s *CartService) GetCartByUser(ctx context.Context, user *models.User) (*models.Cart, error) {
	cart, found, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, apierror.NewInternal("Failed to fetch cart", err)
	}
	if !found {
		return nil, apierror.NewNotFound("User does not have a cart")
	}
	return cart, nil
}

func (s *CartService) AddProductToCart(ctx context.Context, user *models.User, productID bson.ObjectID, quantity int) (*models.Cart, error) {
	product, found, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, apierror.NewInternal("Failed to fetch product", err)
	}
	if !found {
		return nil, apierror.NewBadRequest("Product doesn't exist in database")
	}

	cart, found, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, apierror.NewInternal("Failed to fetch cart", err)
	}

	item := models.CartItem{Product: *product, Quantity: quantity}

	if !found {
		cart = &models.Cart{
			Email:         user.Email,
			CartItems:     []models.CartItem{item},
			PaymentOption: models.DefaultPaymentOption,
		}
		cart.SetTimestamps()
		if err := s.carts.Create(ctx, cart); err != nil {
			return nil, apierror.NewInternal("User cart creation failed", err)
		}
		return cart, nil
	}

	if cart.ItemIndex(productID) >= 0 {
		return nil, apierror.NewBadRequest("Product already in cart. Use the cart sidebar to update or remove product from cart")
	}

	cart.CartItems = append(cart.CartItems, item)
	cart.SetTimestamps()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apierror.NewInternal("Failed to save cart", err)
	}
	return cart, nil
}

// UpdateProductInCart overwrites the quantity of an existing line item.
// The stored snapshot is kept as-is; the catalog lookup is an existence
// check only.
func (s *CartService) UpdateProductInCart(ctx context.Context, user *models.User, productID bson.ObjectID, quantity int) (*models.Cart, error) {
	cart, found, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, apierror.NewInternal("Failed to fetch cart", err)
	}
	if !found {
		return nil, apierror.NewBadRequest("User does not have a cart. Use POST to create cart and add a product")
	}

	_, found, err = s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, apierror.NewInternal("Failed to fetch product", err)
	}
	if !found {
		return nil, apierror.NewBadRequest("Product doesn't exist in database")
	}

	index := cart.ItemIndex(productID)
	if index < 0 {
		return nil, apierror.NewBadRequest("Product not in cart")
	}

	cart.CartItems[index].Quantity = quantity
	cart.SetTimestamps()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apierror.NewInternal("Failed to save cart", err)
	}
	return cart, nil
}

func (s *CartService) DeleteProductFromCart(ctx context.Context, user *models.User, productID bson.ObjectID) error {
	cart, found, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return apierror.NewInternal("Failed to fetch cart", err)
	}
	if !found {
		return apierror.NewBadRequest("User does not have a cart")
	}

	index := cart.ItemIndex(productID)
	if index < 0 {
		return apierror.NewBadRequest("Product not in cart")
	}

	cart.CartItems = append(cart.CartItems[:index], cart.CartItems[index+1:]...)
	cart.SetTimestamps()
	if err := s.carts.Save(ctx, cart); err != nil {
		return apierror.NewInternal("Failed to save cart", err)
	}
	return nil
}

// Checkout debits the wallet by the cart total and empties the cart. The
// debit and the clear are two independent writes with no transaction
// spanning them; a failure after the first leaves the balance reduced
// with the cart still full.
func (s *CartService) Checkout(ctx context.Context, user *models.User) error {
	cart, found, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return apierror.NewInternal("Failed to fetch cart", err)
	}
	if !found {
		return apierror.NewNotFound("User does not have a cart")
	}
	if cart.IsEmpty() {
		return apierror.NewBadRequest("Cart is empty")
	}
	if !user.HasSetNonDefaultAddress() {
		return apierror.NewBadRequest("Address not set")
	}
	// A zero balance is rejected the same as an unset one.
	if user.WalletMoney <= 0 {
		return apierror.NewBadRequest("Wallet balance is insufficient")
	}

	// Total comes from the embedded snapshots, not a fresh catalog read.
	// The debit is not bounded by the balance; the result may go negative.
	total := cart.TotalCost()
	itemCount := len(cart.CartItems)

	user.WalletMoney -= total
	user.SetTimestamps()
	if err := s.users.Save(ctx, user); err != nil {
		return apierror.NewInternal("Failed to update wallet balance", err)
	}

	cart.CartItems = []models.CartItem{}
	cart.SetTimestamps()
	if err := s.carts.Save(ctx, cart); err != nil {
		return apierror.NewInternal("Failed to clear cart", err)
	}

	if s.events != nil {
		s.events.PublishCheckoutCompleted(events.CheckoutCompleted{
			Email:       user.Email,
			Total:       total,
			ItemCount:   itemCount,
			CompletedAt: time.Now(),
		})
	}

	return nil
}
