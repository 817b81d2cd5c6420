package catalog

import (
	"testing"

	"ecogrocer/models"
)

func validProduct() models.Product {
	return models.Product{
		Name:        "Organic Carrots",
		Category:    "Vegetables",
		Price:       50,
		Image:       "https://placehold.co/400x400.png",
		Description: "Fresh, crunchy organic carrots, packed with vitamins.",
	}
}

func TestValidateProductAccepts(t *testing.T) {
	if err := ValidateProduct(validProduct()); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}
}

func TestValidateProductRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Product)
	}{
		{"short name", func(p *models.Product) { p.Name = "ab" }},
		{"zero price", func(p *models.Product) { p.Price = 0 }},
		{"negative price", func(p *models.Product) { p.Price = -5 }},
		{"short description", func(p *models.Product) { p.Description = "too short" }},
		{"unknown category", func(p *models.Product) { p.Category = "Electronics" }},
		{"relative image url", func(p *models.Product) { p.Image = "/images/carrot.png" }},
		{"garbage image url", func(p *models.Product) { p.Image = "not a url" }},
	}
	for _, c := range cases {
		p := validProduct()
		c.mutate(&p)
		if err := ValidateProduct(p); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
