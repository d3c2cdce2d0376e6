package models

import "time"

type Product struct {
	ProductID   string    `json:"productId" bson:"productId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	DealerID    string    `json:"dealerId" bson:"dealerId"`
	DealerName  string    `json:"dealerName,omitempty" bson:"-"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CartItem is one entry in a user's embedded cart. One entry per productId;
// repeat adds bump the quantity.
type CartItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}
