package models

import "time"

// Approval status for seller and delivery-partner profiles.
// pending -> approved | rejected; approved/rejected are terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// SellerProfile holds the seller registration data keyed 1:1 by user id.
type SellerProfile struct {
	UserID    string    `json:"userid" bson:"userid"`
	PAN       string    `json:"pan" bson:"pan"`
	GST       string    `json:"gst,omitempty" bson:"gst,omitempty"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type DeliveryPartnerProfile struct {
	UserID        string    `json:"userid" bson:"userid"`
	PhoneNumber   string    `json:"phone_number" bson:"phone_number"`
	LicenseNumber string    `json:"license_number" bson:"license_number"`
	VehicleType   string    `json:"vehicle_type" bson:"vehicle_type"` // Bike, Scooter, E-rickshaw, Other
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// SellerListing is the admin view row: user record joined with profile.
type SellerListing struct {
	UserID        string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Joined        time.Time `json:"joined"`
	PAN           string    `json:"pan"`
	GST           string    `json:"gst"`
	Status        string    `json:"status"`
}

type DeliveryPartnerListing struct {
	UserID        string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Joined        time.Time `json:"joined"`
	PhoneNumber   string    `json:"phone_number"`
	LicenseNumber string    `json:"license_number"`
	VehicleType   string    `json:"vehicle_type"`
	Status        string    `json:"status"`
}
