package cart

import "ecogrocer/models"

// MaxQuantity caps how many units of one product a cart may hold.
const MaxQuantity = 8

// AddItem adds one unit of the given product snapshot. An existing line is
// bumped by one up to MaxQuantity; at the cap the add is silently ignored.
func AddItem(items []models.CartItem, snapshot models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ProductID == snapshot.ProductID {
			if items[i].Quantity < MaxQuantity {
				items[i].Quantity++
			}
			return items
		}
	}
	snapshot.Quantity = 1
	return append(items, snapshot)
}

// SetQuantity sets the quantity of a line item, clamped to [1, MaxQuantity].
// A quantity of zero or less removes the line entirely. Unknown product ids
// are ignored.
func SetQuantity(items []models.CartItem, productID string, qty int) []models.CartItem {
	if qty <= 0 {
		return RemoveItem(items, productID)
	}
	if qty > MaxQuantity {
		qty = MaxQuantity
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			break
		}
	}
	return items
}

// RemoveItem drops a line item by product id. Removing an absent id is a
// no-op.
func RemoveItem(items []models.CartItem, productID string) []models.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// Total sums price times quantity over all line items.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
