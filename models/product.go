package models

import "time"

// Product categories sellers can list under.
var ProductCategories = []string{"Vegetables", "Fruits", "Dairy", "Bakery"}

type Product struct {
	ProductID   string    `json:"productid" bson:"productid"`
	SellerID    string    `json:"sellerid" bson:"sellerid"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Image       string    `json:"image" bson:"image"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
