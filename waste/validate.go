package waste

import (
	"fmt"
	"slices"
	"time"

	"ecogrocer/models"
	"ecogrocer/utils"
)

const (
	minWeightKg = 2.0
	maxWeightKg = 10.0
)

// ValidateRequest checks a pickup request against the scheduling rules.
// The pickup date must not be before today (midnight, local time of now).
func ValidateRequest(req models.WasteRequest, now time.Time) error {
	if !slices.Contains(models.WasteTypes, req.WasteType) {
		return fmt.Errorf("unknown waste type %q", req.WasteType)
	}
	if req.WeightKg < minWeightKg || req.WeightKg > maxWeightKg {
		return fmt.Errorf("weight must be between %.0f and %.0f kg", minWeightKg, maxWeightKg)
	}
	if len(req.Address) < 10 {
		return fmt.Errorf("please provide a detailed address")
	}
	if !utils.IsDigits(req.Phone, 10) {
		return fmt.Errorf("please enter a valid 10-digit phone number")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.PickupDate.Before(today) {
		return fmt.Errorf("pickup date cannot be in the past")
	}
	return nil
}
