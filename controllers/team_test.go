package controllers_test

import (
	"testing"
)

func teamPayload(overrides map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"name":     "Sam Reyes",
		"email":    "sam@studio.test",
		"password": "supersecret",
		"roles":    []string{"photographer"},
	}
	for k, v := range overrides {
		payload[k] = v
	}
	return payload
}

func TestTeamMemberValidation(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	// Rating outside 0-5
	w := doJSON(t, r, "POST", "/api/team", token,
		teamPayload(map[string]interface{}{"rating": 7}))
	if w.Code != 400 {
		t.Fatalf("Expected 400 for rating 7, got %d", w.Code)
	}
	if fields := fieldErrors(t, w); fields["rating"] != "out_of_range" {
		t.Errorf("Expected rating violation, got %v", fields)
	}

	// Unknown role
	w = doJSON(t, r, "POST", "/api/team", token,
		teamPayload(map[string]interface{}{"roles": []string{"producer"}}))
	if w.Code != 400 {
		t.Errorf("Expected 400 for unknown role, got %d", w.Code)
	}

	// At least one role
	w = doJSON(t, r, "POST", "/api/team", token,
		teamPayload(map[string]interface{}{"roles": []string{}}))
	if w.Code != 400 {
		t.Errorf("Expected 400 for empty roles, got %d", w.Code)
	}

	// Short password
	w = doJSON(t, r, "POST", "/api/team", token,
		teamPayload(map[string]interface{}{"password": "short"}))
	if w.Code != 400 {
		t.Errorf("Expected 400 for short password, got %d", w.Code)
	}
}

func TestTeamMemberCreateAndPasswordHidden(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	created := createRecord(t, r, token, "/api/team",
		teamPayload(map[string]interface{}{"rating": 4.5, "specialties": []string{"weddings", "drone"}}))

	if _, exposed := created["Password"]; exposed {
		t.Error("Password must never be serialized")
	}
	if created["Email"] != "sam@studio.test" {
		t.Errorf("Expected normalized email, got %v", created["Email"])
	}

	// Duplicate email rejected
	w := doJSON(t, r, "POST", "/api/team", token, teamPayload(nil))
	if w.Code != 409 {
		t.Errorf("Expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestInactiveTeamMemberCannotLogIn(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	created := createRecord(t, r, token, "/api/team",
		teamPayload(map[string]interface{}{"isActive": false}))
	if created["IsActive"] != false {
		t.Errorf("Expected IsActive false in create response, got %v", created["IsActive"])
	}

	// The stored row is inactive too, not flipped by a column default
	w := doJSON(t, r, "GET", "/api/team/"+recordID(t, created), token, nil)
	if w.Code != 200 {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if stored := decodeBody(t, w); stored["IsActive"] != false {
		t.Errorf("Expected stored member inactive, got %v", stored["IsActive"])
	}

	// Deactivated accounts cannot start a session
	w = doJSON(t, r, "POST", "/auth/login", "", map[string]interface{}{
		"email": "sam@studio.test", "password": "supersecret",
	})
	if w.Code != 401 {
		t.Errorf("Expected 401 for inactive account, got %d", w.Code)
	}
}

func TestDeleteTeamMemberBlockedWhenDirector(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	member := createRecord(t, r, token, "/api/team", teamPayload(nil))
	memberID := recordID(t, member)

	client := createRecord(t, r, token, "/api/clients", map[string]interface{}{"name": "Northwind"})
	shootType := createRecord(t, r, token, "/api/shoot-types", map[string]interface{}{
		"name": "Wedding", "code": "WED",
	})
	shoot := createRecord(t, r, token, "/api/shoots", map[string]interface{}{
		"clientId":    recordID(t, client),
		"shootTypeId": recordID(t, shootType),
		"directorId":  memberID,
	})

	if w := doJSON(t, r, "DELETE", "/api/team/"+memberID, token, nil); w.Code != 409 {
		t.Errorf("Expected 409 while directing a shoot, got %d", w.Code)
	}

	if w := doJSON(t, r, "DELETE", "/api/shoots/"+recordID(t, shoot), token, nil); w.Code != 200 {
		t.Fatalf("Expected 200 deleting shoot, got %d", w.Code)
	}
	if w := doJSON(t, r, "DELETE", "/api/team/"+memberID, token, nil); w.Code != 200 {
		t.Errorf("Expected 200 once unassigned, got %d", w.Code)
	}
}
