package controllers_test

import (
	"strings"
	"testing"
	"time"
)

func TestShootTypeCodeNormalized(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	created := createRecord(t, r, token, "/api/shoot-types", map[string]interface{}{
		"name": "Wedding", "code": "wed",
	})
	if created["Code"] != "WED" {
		t.Errorf("Expected uppercased code, got %v", created["Code"])
	}

	// Codes longer than 10 characters rejected
	w := doJSON(t, r, "POST", "/api/shoot-types", token, map[string]interface{}{
		"name": "Commercial", "code": "COMMERCIAL1",
	})
	if w.Code != 400 {
		t.Fatalf("Expected 400 for long code, got %d", w.Code)
	}
	if fields := fieldErrors(t, w); fields["code"] != "max_length_10" {
		t.Errorf("Expected code violation, got %v", fields)
	}
}

func TestShootRequiresClientAndType(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, "POST", "/api/shoots", token, map[string]interface{}{
		"title": "Unanchored shoot",
	})
	if w.Code != 400 {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	fields := fieldErrors(t, w)
	if fields["clientId"] != "required" || fields["shootTypeId"] != "required" {
		t.Errorf("Expected clientId and shootTypeId violations, got %v", fields)
	}
}

func TestShootCodeGeneratedFromTypeCode(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	client := createRecord(t, r, token, "/api/clients", map[string]interface{}{"name": "Northwind"})
	shootType := createRecord(t, r, token, "/api/shoot-types", map[string]interface{}{
		"name": "Wedding", "code": "WED",
	})

	start := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	shoot := createRecord(t, r, token, "/api/shoots", map[string]interface{}{
		"title":       "Riverside ceremony",
		"clientId":    recordID(t, client),
		"shootTypeId": recordID(t, shootType),
		"startDate":   start.Format(time.RFC3339),
	})

	code, _ := shoot["Code"].(string)
	if !strings.HasPrefix(code, "WED-20260912-") {
		t.Errorf("Expected WED-20260912- prefix, got %q", code)
	}
	if len(code) != len("WED-20260912-")+6 {
		t.Errorf("Expected 6 random characters, got %q", code)
	}
	if shoot["Status"] != "planned" {
		t.Errorf("Expected default planned status, got %v", shoot["Status"])
	}
}

func TestShootStatusAndDatesValidated(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	client := createRecord(t, r, token, "/api/clients", map[string]interface{}{"name": "Northwind"})
	shootType := createRecord(t, r, token, "/api/shoot-types", map[string]interface{}{
		"name": "Wedding", "code": "WED",
	})
	base := map[string]interface{}{
		"clientId":    recordID(t, client),
		"shootTypeId": recordID(t, shootType),
	}

	payload := map[string]interface{}{"status": "bogus"}
	for k, v := range base {
		payload[k] = v
	}
	w := doJSON(t, r, "POST", "/api/shoots", token, payload)
	if w.Code != 400 {
		t.Errorf("Expected 400 for unknown status, got %d", w.Code)
	}

	payload = map[string]interface{}{
		"startDate": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"endDate":   time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}
	for k, v := range base {
		payload[k] = v
	}
	w = doJSON(t, r, "POST", "/api/shoots", token, payload)
	if w.Code != 400 {
		t.Fatalf("Expected 400 for end before start, got %d", w.Code)
	}
	if fields := fieldErrors(t, w); fields["endDate"] != "before_start_date" {
		t.Errorf("Expected endDate violation, got %v", fields)
	}
}

func TestDeleteShootTypeBlockedWhileReferenced(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	client := createRecord(t, r, token, "/api/clients", map[string]interface{}{"name": "Northwind"})
	shootType := createRecord(t, r, token, "/api/shoot-types", map[string]interface{}{
		"name": "Wedding", "code": "WED",
	})
	typeID := recordID(t, shootType)
	shoot := createRecord(t, r, token, "/api/shoots", map[string]interface{}{
		"clientId":    recordID(t, client),
		"shootTypeId": typeID,
	})

	if w := doJSON(t, r, "DELETE", "/api/shoot-types/"+typeID, token, nil); w.Code != 409 {
		t.Errorf("Expected 409 while referenced, got %d", w.Code)
	}

	if w := doJSON(t, r, "DELETE", "/api/shoots/"+recordID(t, shoot), token, nil); w.Code != 200 {
		t.Fatalf("Expected 200 deleting shoot, got %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, "DELETE", "/api/shoot-types/"+typeID, token, nil); w.Code != 200 {
		t.Errorf("Expected 200 once unreferenced, got %d", w.Code)
	}
}

func TestDeleteShootBlockedByEdits(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	client := createRecord(t, r, token, "/api/clients", map[string]interface{}{"name": "Northwind"})
	shootType := createRecord(t, r, token, "/api/shoot-types", map[string]interface{}{
		"name": "Wedding", "code": "WED",
	})
	shoot := createRecord(t, r, token, "/api/shoots", map[string]interface{}{
		"clientId":    recordID(t, client),
		"shootTypeId": recordID(t, shootType),
	})
	shootID := recordID(t, shoot)

	edit := createRecord(t, r, token, "/api/edits", map[string]interface{}{
		"title":   "Highlight reel",
		"shootId": shootID,
	})

	if w := doJSON(t, r, "DELETE", "/api/shoots/"+shootID, token, nil); w.Code != 409 {
		t.Errorf("Expected 409 while edits exist, got %d", w.Code)
	}
	if w := doJSON(t, r, "DELETE", "/api/edits/"+recordID(t, edit), token, nil); w.Code != 200 {
		t.Fatalf("Expected 200 deleting edit, got %d", w.Code)
	}
	if w := doJSON(t, r, "DELETE", "/api/shoots/"+shootID, token, nil); w.Code != 200 {
		t.Errorf("Expected 200 once edits are gone, got %d", w.Code)
	}
}

func TestEditStatusValidation(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	// Title required
	w := doJSON(t, r, "POST", "/api/edits", token, map[string]interface{}{})
	if w.Code != 400 {
		t.Fatalf("Expected 400 without title, got %d", w.Code)
	}
	if fields := fieldErrors(t, w); fields["title"] != "required" {
		t.Errorf("Expected title=required, got %v", fields)
	}

	// Defaults applied
	created := createRecord(t, r, token, "/api/edits", map[string]interface{}{
		"title": "Teaser cut",
	})
	if created["Status"] != "pending" || created["CostStatus"] != "unpaid" {
		t.Errorf("Expected pending/unpaid defaults, got %v / %v",
			created["Status"], created["CostStatus"])
	}

	// Unknown cost status rejected
	w = doJSON(t, r, "POST", "/api/edits", token, map[string]interface{}{
		"title": "Teaser cut", "costStatus": "iou",
	})
	if w.Code != 400 {
		t.Errorf("Expected 400 for unknown cost status, got %d", w.Code)
	}
}
