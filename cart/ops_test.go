package cart

import (
	"testing"

	"ecogrocer/models"
)

func carrot() models.CartItem {
	return models.CartItem{ProductID: "p1", Name: "Organic Carrots", Price: 50}
}

func TestAddItemNewAndIncrement(t *testing.T) {
	items := AddItem(nil, carrot())
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("first add: got %+v", items)
	}

	items = AddItem(items, carrot())
	if items[0].Quantity != 2 {
		t.Fatalf("second add: quantity = %d, want 2", items[0].Quantity)
	}
}

func TestAddItemCapsAtMax(t *testing.T) {
	var items []models.CartItem
	for i := 0; i < 12; i++ {
		items = AddItem(items, carrot())
	}
	if len(items) != 1 {
		t.Fatalf("expected a single line, got %d", len(items))
	}
	if items[0].Quantity != MaxQuantity {
		t.Fatalf("quantity = %d, want %d", items[0].Quantity, MaxQuantity)
	}
}

func TestSetQuantityClamps(t *testing.T) {
	items := AddItem(nil, carrot())

	items = SetQuantity(items, "p1", 9)
	if items[0].Quantity != MaxQuantity {
		t.Errorf("quantity 9 should clamp to %d, got %d", MaxQuantity, items[0].Quantity)
	}

	items = SetQuantity(items, "p1", 3)
	if items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", items[0].Quantity)
	}
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	items := AddItem(nil, carrot())
	items = SetQuantity(items, "p1", 0)
	if len(items) != 0 {
		t.Fatalf("quantity 0 should remove the line, got %+v", items)
	}
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	items := AddItem(nil, carrot())
	items = SetQuantity(items, "missing", 5)
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("unknown id changed the cart: %+v", items)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	items := AddItem(nil, carrot())
	items = RemoveItem(items, "p1")
	items = RemoveItem(items, "p1")
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestTotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p5", Price: 100, Quantity: 2},
		{ProductID: "p2", Price: 50, Quantity: 1},
	}
	if got := Total(items); got != 250 {
		t.Fatalf("Total = %v, want 250", got)
	}
	if got := Total(nil); got != 0 {
		t.Fatalf("Total(nil) = %v, want 0", got)
	}
}
