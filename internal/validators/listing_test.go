package validators

import "testing"

func TestValidateCoordinates_Bounds(t *testing.T) {
	// Endpoints are inclusive.
	if err := ValidateCoordinates(90, 180); err != nil {
		t.Errorf("lat=90 lon=180 should be valid, got %v", err)
	}
	if err := ValidateCoordinates(-90, -180); err != nil {
		t.Errorf("lat=-90 lon=-180 should be valid, got %v", err)
	}
	if err := ValidateCoordinates(0, 0); err != nil {
		t.Errorf("origin should be valid, got %v", err)
	}
}

func TestValidateCoordinates_OutOfRange(t *testing.T) {
	if err := ValidateCoordinates(91, 0); err == nil {
		t.Error("lat=91 should be rejected")
	}
	if err := ValidateCoordinates(-90.5, 0); err == nil {
		t.Error("lat=-90.5 should be rejected")
	}
	if err := ValidateCoordinates(0, 180.1); err == nil {
		t.Error("lon=180.1 should be rejected")
	}
	if err := ValidateCoordinates(0, -181); err == nil {
		t.Error("lon=-181 should be rejected")
	}
}

func TestValidateCoordinates_ErrorNamesField(t *testing.T) {
	err := ValidateCoordinates(95, 0)
	ve, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Field != "latitude" {
		t.Errorf("expected field latitude, got %q", ve.Field)
	}
}

func TestValidateUserRole(t *testing.T) {
	if err := ValidateUserRole("farmer"); err != nil {
		t.Errorf("farmer should be valid, got %v", err)
	}
	if err := ValidateUserRole("buyer"); err != nil {
		t.Errorf("buyer should be valid, got %v", err)
	}
	if err := ValidateUserRole("admin"); err == nil {
		t.Error("admin should be rejected")
	}
	if err := ValidateUserRole(""); err == nil {
		t.Error("empty role should be rejected")
	}
}

func TestValidateCropStatus(t *testing.T) {
	for _, s := range []string{"available", "sold", "reserved"} {
		if err := ValidateCropStatus(s); err != nil {
			t.Errorf("%s should be valid, got %v", s, err)
		}
	}
	if err := ValidateCropStatus("archived"); err == nil {
		t.Error("archived should be rejected")
	}
}

func TestValidateResourceType(t *testing.T) {
	for _, typ := range []string{"equipment", "tool", "other"} {
		if err := ValidateResourceType(typ); err != nil {
			t.Errorf("%s should be valid, got %v", typ, err)
		}
	}
	if err := ValidateResourceType("vehicle"); err == nil {
		t.Error("vehicle should be rejected")
	}
}

func TestValidateAvailability(t *testing.T) {
	for _, a := range []string{"available", "in_use", "maintenance"} {
		if err := ValidateAvailability(a); err != nil {
			t.Errorf("%s should be valid, got %v", a, err)
		}
	}
	if err := ValidateAvailability("busy"); err == nil {
		t.Error("busy should be rejected")
	}
}

func TestValidateNonNegative(t *testing.T) {
	if err := ValidateNonNegative("price", 0); err != nil {
		t.Errorf("zero should be valid, got %v", err)
	}
	if err := ValidateNonNegative("price", 49.99); err != nil {
		t.Errorf("positive should be valid, got %v", err)
	}
	if err := ValidateNonNegative("price", -0.01); err == nil {
		t.Error("negative should be rejected")
	}
}
