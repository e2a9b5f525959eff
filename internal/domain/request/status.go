package request

import "github.com/agroconnect/agroconnect-api/internal/httperr"

// ===============================
// Resource Request Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"

	// StatusCompleted exists in the schema but no operation transitions
	// a request into it.
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

// CanRespond limits an owner's answer to accepted or rejected. The current
// status is not inspected: answering an already-answered request overwrites
// it, matching the loose lifecycle of the stored records.
func CanRespond(next Status) error {
	if next != StatusAccepted && next != StatusRejected {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

// InitialStatus is the status every new request starts in.
func InitialStatus() Status {
	return StatusPending
}
