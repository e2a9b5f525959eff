package validators

import (
	"fmt"

	"github.com/agroconnect/agroconnect-api/internal/models"
)

// ValidationError reports a field that failed a range or enum check that
// binding tags cannot express.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func errField(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}

// Coordinates are two independently bounded scalars; latitude 90 and
// longitude 180 are valid endpoints.
func ValidateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return errField("latitude", "must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return errField("longitude", "must be between -180 and 180")
	}
	return nil
}

func ValidateUserRole(role string) error {
	switch role {
	case models.RoleFarmer, models.RoleBuyer:
		return nil
	}
	return errField("role", "must be farmer or buyer")
}

func ValidateCropStatus(status string) error {
	switch status {
	case models.CropStatusAvailable, models.CropStatusSold, models.CropStatusReserved:
		return nil
	}
	return errField("status", "must be available, sold or reserved")
}

func ValidateResourceType(t string) error {
	switch t {
	case models.ResourceTypeEquipment, models.ResourceTypeTool, models.ResourceTypeOther:
		return nil
	}
	return errField("type", "must be equipment, tool or other")
}

func ValidateAvailability(availability string) error {
	switch availability {
	case models.AvailabilityAvailable, models.AvailabilityInUse, models.AvailabilityMaintenance:
		return nil
	}
	return errField("availability", "must be available, in_use or maintenance")
}

func ValidateNonNegative(field string, value float64) error {
	if value < 0 {
		return errField(field, "must not be negative")
	}
	return nil
}
