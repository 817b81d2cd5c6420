package roles

import (
	"testing"

	"ecogrocer/models"
)

func TestFromDisplayName(t *testing.T) {
	cases := []struct {
		in       string
		wantRole string
		wantName string
	}{
		{"Asha Rao (Seller)", models.RoleSeller, "Asha Rao"},
		{"Ravi Kumar (Delivery)", models.RoleDelivery, "Ravi Kumar"},
		{"Plain Customer", models.RoleCustomer, "Plain Customer"},
		{"", models.RoleCustomer, ""},
		{"(Seller)", models.RoleSeller, ""},
		// seller marker takes precedence when both are present
		{"Odd Name (Seller) (Delivery)", models.RoleSeller, "Odd Name  (Delivery)"},
	}
	for _, c := range cases {
		role, name := FromDisplayName(c.in)
		if role != c.wantRole {
			t.Errorf("FromDisplayName(%q) role = %q, want %q", c.in, role, c.wantRole)
		}
		if name != c.wantName {
			t.Errorf("FromDisplayName(%q) name = %q, want %q", c.in, name, c.wantName)
		}
	}
}

func TestDisplayNameRoundTrip(t *testing.T) {
	for _, role := range []string{models.RoleSeller, models.RoleDelivery, models.RoleCustomer} {
		display := DisplayNameFor("Asha Rao", role)
		gotRole, gotName := FromDisplayName(display)
		if gotRole != role {
			t.Errorf("round trip role %q: got %q from %q", role, gotRole, display)
		}
		if gotName != "Asha Rao" {
			t.Errorf("round trip name for role %q: got %q", role, gotName)
		}
	}
}

func TestValid(t *testing.T) {
	for _, role := range []string{models.RoleCustomer, models.RoleSeller, models.RoleDelivery, models.RoleAdmin} {
		if !Valid(role) {
			t.Errorf("Valid(%q) = false", role)
		}
	}
	if Valid("superuser") {
		t.Error("Valid(superuser) = true")
	}
}
