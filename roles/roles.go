// Package roles classifies legacy display names that encode a role as a
// trailing marker, e.g. "Asha Rao (Seller)". New accounts carry an explicit
// role field; this classifier exists for identities imported from the old
// scheme where the marker was the only role signal.
package roles

import (
	"strings"

	"ecogrocer/models"
)

const (
	sellerMarker   = "(Seller)"
	deliveryMarker = "(Delivery)"
)

// FromDisplayName derives the role encoded in a display name and returns the
// role together with the name stripped of its marker. A name with no marker
// is a customer. Seller wins if a name somehow carries both markers.
func FromDisplayName(displayName string) (role string, cleanName string) {
	switch {
	case strings.Contains(displayName, sellerMarker):
		return models.RoleSeller, stripMarker(displayName, sellerMarker)
	case strings.Contains(displayName, deliveryMarker):
		return models.RoleDelivery, stripMarker(displayName, deliveryMarker)
	default:
		return models.RoleCustomer, strings.TrimSpace(displayName)
	}
}

func stripMarker(name, marker string) string {
	return strings.TrimSpace(strings.Replace(name, marker, "", 1))
}

// DisplayNameFor renders a name in the legacy marker format for the given
// role. Customers and admins carry no marker.
func DisplayNameFor(name, role string) string {
	switch role {
	case models.RoleSeller:
		return name + " " + sellerMarker
	case models.RoleDelivery:
		return name + " " + deliveryMarker
	default:
		return name
	}
}

// Valid reports whether role is one of the known role values.
func Valid(role string) bool {
	switch role {
	case models.RoleCustomer, models.RoleSeller, models.RoleDelivery, models.RoleAdmin:
		return true
	}
	return false
}
