package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "dana.reyes+tag@studio.example.com"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plainstring", "@no-local.com", "no-domain@", "spaces in@mail.com", "no-tld@host"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+15550123456", "15550123456", "+44 20 7946 0958", "(555) 012-3456"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("Expected %q to be valid", phone)
		}
	}

	invalid := []string{"", "abc", "+0123456", "++15550123456"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("Expected %q to be invalid", phone)
		}
	}
}

func TestViolations(t *testing.T) {
	v := Violations{}
	if !v.Empty() {
		t.Error("Expected new violations to be empty")
	}

	Required("name", "  ", v)
	Required("title", "ok", v)
	if v["name"] != "required" {
		t.Errorf("Expected name=required, got %v", v)
	}
	if _, present := v["title"]; present {
		t.Error("Expected no violation for a populated field")
	}

	RangeFloat("rating", 7, 0, 5, v)
	if v["rating"] != "out_of_range" {
		t.Errorf("Expected rating violation, got %v", v)
	}
	RangeFloat("cost", 5, 0, 5, v)
	if _, present := v["cost"]; present {
		t.Error("Expected boundary value to pass")
	}

	OneOf("status", "bogus", []string{"planned", "completed"}, v)
	if v["status"] != "invalid_value" {
		t.Errorf("Expected status violation, got %v", v)
	}
}
