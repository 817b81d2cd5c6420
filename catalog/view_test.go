package catalog

import (
	"testing"

	"ecogrocer/models"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{ProductID: "p1", Name: "Organic Carrots", Category: "Vegetables", Price: 50},
		{ProductID: "p2", Name: "Fresh Apples", Category: "Fruits", Price: 120},
		{ProductID: "p3", Name: "Almond Milk", Category: "Dairy", Price: 200},
		{ProductID: "p4", Name: "Sourdough Bread", Category: "Bakery", Price: 150},
		{ProductID: "p5", Name: "Spinach", Category: "Vegetables", Price: 50},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ProductID
	}
	return out
}

func TestApplyViewNoFilterPreservesOrder(t *testing.T) {
	got := ids(ApplyView(sampleCatalog(), "", ""))
	want := []string{"p1", "p2", "p3", "p4", "p5"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order changed: got %v, want %v", got, want)
		}
	}
}

func TestApplyViewCategoryFilter(t *testing.T) {
	got := ApplyView(sampleCatalog(), "Vegetables", "")
	if len(got) != 2 || got[0].ProductID != "p1" || got[1].ProductID != "p5" {
		t.Fatalf("category filter: got %v", ids(got))
	}

	if got := ApplyView(sampleCatalog(), "Seafood", ""); len(got) != 0 {
		t.Fatalf("unknown category should match nothing, got %v", ids(got))
	}
}

func TestApplyViewPriceSort(t *testing.T) {
	asc := ApplyView(sampleCatalog(), "", "asc")
	for i := 1; i < len(asc); i++ {
		if asc[i-1].Price > asc[i].Price {
			t.Fatalf("asc sort out of order: %v", ids(asc))
		}
	}
	// stable: p1 comes before p5 since both cost 50
	if asc[0].ProductID != "p1" || asc[1].ProductID != "p5" {
		t.Fatalf("asc sort not stable for equal prices: %v", ids(asc))
	}

	desc := ApplyView(sampleCatalog(), "", "desc")
	for i := 1; i < len(desc); i++ {
		if desc[i-1].Price < desc[i].Price {
			t.Fatalf("desc sort out of order: %v", ids(desc))
		}
	}
}

func TestApplyViewDoesNotMutateInput(t *testing.T) {
	in := sampleCatalog()
	ApplyView(in, "", "desc")
	if in[0].ProductID != "p1" || in[4].ProductID != "p5" {
		t.Fatal("ApplyView mutated its input")
	}
}
