package catalog

import (
	"errors"
	"fmt"
	"slices"

	"ecogrocer/models"
	"ecogrocer/utils"
)

// ErrNotFound is returned when a product id does not exist or belongs to a
// different seller.
var ErrNotFound = errors.New("product not found")

// ValidateProduct checks the listing rules: name at least 3 characters,
// positive price, description at least 10 characters, known category, and a
// well-formed absolute image URL.
func ValidateProduct(p models.Product) error {
	if len(p.Name) < 3 {
		return fmt.Errorf("name must be at least 3 characters")
	}
	if p.Price <= 0 {
		return fmt.Errorf("price must be greater than zero")
	}
	if len(p.Description) < 10 {
		return fmt.Errorf("description must be at least 10 characters")
	}
	if !slices.Contains(models.ProductCategories, p.Category) {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if !utils.IsValidURL(p.Image) {
		return fmt.Errorf("image must be a valid URL")
	}
	return nil
}
