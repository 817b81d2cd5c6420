package waste

import (
	"testing"
	"time"

	"ecogrocer/models"
)

func validRequest(now time.Time) models.WasteRequest {
	return models.WasteRequest{
		WasteType:  "Plastic",
		WeightKg:   5,
		Address:    "12 Green Lane, Ward 4, Pune",
		Phone:      "9876543210",
		PickupDate: now.AddDate(0, 0, 2),
	}
}

func TestValidateRequestAccepts(t *testing.T) {
	now := time.Now()
	if err := ValidateRequest(validRequest(now), now); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	// same-day pickup is allowed
	req := validRequest(now)
	req.PickupDate = now
	if err := ValidateRequest(req, now); err != nil {
		t.Fatalf("same-day pickup rejected: %v", err)
	}
}

func TestValidateRequestRejects(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		mutate func(*models.WasteRequest)
	}{
		{"below minimum weight", func(r *models.WasteRequest) { r.WeightKg = 1.5 }},
		{"above maximum weight", func(r *models.WasteRequest) { r.WeightKg = 10.5 }},
		{"past pickup date", func(r *models.WasteRequest) { r.PickupDate = now.AddDate(0, 0, -1) }},
		{"unknown waste type", func(r *models.WasteRequest) { r.WasteType = "Metal" }},
		{"short address", func(r *models.WasteRequest) { r.Address = "Pune" }},
		{"short phone", func(r *models.WasteRequest) { r.Phone = "12345" }},
		{"non-numeric phone", func(r *models.WasteRequest) { r.Phone = "98765abcde" }},
	}
	for _, c := range cases {
		req := validRequest(now)
		c.mutate(&req)
		if err := ValidateRequest(req, now); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
