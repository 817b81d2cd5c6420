package models

import "time"

// Waste pickup request status values.
const (
	WastePending   = "pending"
	WasteScheduled = "scheduled"
	WasteCompleted = "completed"
	WasteCancelled = "cancelled"
)

var WasteTypes = []string{"Plastic", "Paper", "Glass", "Organic", "E-waste"}

type WasteRequest struct {
	RequestID  string    `json:"requestid" bson:"requestid"`
	UserID     string    `json:"userid" bson:"userid"`
	WasteType  string    `json:"waste_type" bson:"waste_type"`
	WeightKg   float64   `json:"weight_kg" bson:"weight_kg"`
	Address    string    `json:"address" bson:"address"`
	Phone      string    `json:"phone" bson:"phone"`
	PickupDate time.Time `json:"pickup_date" bson:"pickup_date"`
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
