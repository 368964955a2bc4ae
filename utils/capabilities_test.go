package utils

import "testing"

func TestHasCapability(t *testing.T) {
	allCaps := []string{
		CapManageClients, CapManageCatalog, CapManageShoots,
		CapManageEdits, CapManageCoupons, CapManageTeam,
	}

	for _, capability := range allCaps {
		if !HasCapability([]string{"admin"}, capability) {
			t.Errorf("Expected admin to hold %s", capability)
		}
	}

	for _, capability := range allCaps {
		got := HasCapability([]string{"photographer"}, capability)
		want := capability == CapManageShoots
		if got != want {
			t.Errorf("photographer %s: got %v, want %v", capability, got, want)
		}
	}

	for _, capability := range allCaps {
		got := HasCapability([]string{"editor"}, capability)
		want := capability == CapManageEdits
		if got != want {
			t.Errorf("editor %s: got %v, want %v", capability, got, want)
		}
	}

	// Multiple roles union their grants
	if !HasCapability([]string{"photographer", "editor"}, CapManageEdits) {
		t.Error("Expected a photographer+editor to manage edits")
	}

	// Fail closed on anything unknown or empty
	if HasCapability(nil, CapManageClients) {
		t.Error("Expected no roles to grant nothing")
	}
	if HasCapability([]string{"intern"}, CapManageClients) {
		t.Error("Expected unknown roles to grant nothing")
	}
	if HasCapability([]string{"admin"}, "launch_rockets") {
		t.Error("Expected unknown capabilities to be denied")
	}
}
