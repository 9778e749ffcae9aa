package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product represents a catalog entry. The cart embeds a full copy of this
// struct per line item, so later catalog edits never change an existing cart.
type Product struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string        `bson:"name" json:"name" validate:"required"`
	Category string        `bson:"category" json:"category" validate:"required"`
	Cost     float64       `bson:"cost" json:"cost" validate:"gte=0"`
	Rating   float64       `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	Image    string        `bson:"image" json:"image"`
}
