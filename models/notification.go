package models

// Notification is a message for the dispatch side-channel. Delivery is
// simulated: the worker logs what would have been sent.
type Notification struct {
	Recipient    string `json:"recipient"`
	TemplateKind string `json:"template_kind"` // e.g. "seller-approved", "otp"
	Subject      string `json:"subject,omitempty"`
}
