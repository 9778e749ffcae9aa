package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultAddress is the sentinel stored for users who never configured a
// delivery address. Checkout refuses to run while it is still in place.
const DefaultAddress = "ADDRESS_NOT_SET"

// User represents a registered customer, including the wallet balance that
// checkout debits and the single delivery address field.
type User struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"name" json:"name" validate:"required"`
	Email       string        `bson:"email" json:"email" validate:"required,email"`
	Password    string        `bson:"password" json:"-" validate:"required,min=8"` // Never expose in JSON
	Address     string        `bson:"address" json:"address"`
	WalletMoney float64       `bson:"walletMoney" json:"walletMoney"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// SetTimestamps sets created_at on first call and always updates updated_at
func (u *User) SetTimestamps() {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}

// HasSetNonDefaultAddress reports whether the user replaced the registration
// sentinel with a real delivery address.
func (u *User) HasSetNonDefaultAddress() bool {
	return u.Address != DefaultAddress
}

// RegisterRequest represents the request payload for creating a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SetAddressRequest updates the user's single delivery address field.
type SetAddressRequest struct {
	Address string `json:"address" binding:"required,min=20"`
}
