package models

import "time"

// CartItem is one product line in a user's cart, a snapshot of the product
// at the time it was added plus a quantity.
type CartItem struct {
	ProductID string  `json:"productid" bson:"productid"`
	Name      string  `json:"name" bson:"name"`
	Category  string  `json:"category" bson:"category"`
	Price     float64 `json:"price" bson:"price"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Cart is the per-user cart document. One document per user.
type Cart struct {
	UserID    string     `json:"userid" bson:"userid"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// Order status values.
const (
	OrderPlaced    = "placed"
	OrderInTransit = "in-transit"
	OrderDelivered = "delivered"
)

// Order represents a finalized order. Append-only; only Status mutates.
type Order struct {
	OrderID   string     `json:"orderid" bson:"orderid"`
	UserID    string     `json:"userid" bson:"userid"`
	Items     []CartItem `json:"items" bson:"items"`
	Total     float64    `json:"total" bson:"total"`
	Status    string     `json:"status" bson:"status"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
}
