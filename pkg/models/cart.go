package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultPaymentOption is stored on carts until a payment method is chosen.
const DefaultPaymentOption = "PAYMENT_OPTION_NOT_SET"

// CartItem is one line of a cart: a product snapshot taken at add time plus
// the requested quantity. The snapshot keeps the price the user saw.
type CartItem struct {
	Product  Product `bson:"product" json:"product"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"gte=1"`
}

// Cart is the single cart document each user owns, keyed by email. It is
// created lazily on the first add and only ever emptied, never deleted.
type Cart struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email         string        `bson:"email" json:"email"`
	CartItems     []CartItem    `bson:"cartItems" json:"cartItems"`
	PaymentOption string        `bson:"paymentOption" json:"paymentOption"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

// SetTimestamps sets created_at on first call and always updates updated_at
func (c *Cart) SetTimestamps() {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}

// ItemIndex returns the position of the line item holding productID, or -1.
func (c *Cart) ItemIndex(productID bson.ObjectID) int {
	for i := range c.CartItems {
		if c.CartItems[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.CartItems) == 0
}

// TotalCost sums snapshot cost times quantity across all line items. It reads
// the embedded snapshots, not the live catalog.
func (c *Cart) TotalCost() float64 {
	var total float64
	for _, item := range c.CartItems {
		total += item.Product.Cost * float64(item.Quantity)
	}
	return total
}

// AddToCartRequest adds a product to the caller's cart.
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartRequest overwrites a line item's quantity. Quantity is a pointer
// so zero passes binding; zero removes the item.
type UpdateCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required,min=0"`
}
