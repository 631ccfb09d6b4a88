package approval

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Action string

const (
	ActionApprove Action = "approved"
	ActionReject  Action = "rejected"
)

// AttendanceType accompanies every decision; it overrides what the
// employee originally requested.
type AttendanceType string

const (
	AttendanceFullDay AttendanceType = "full day"
	AttendanceHalfDay AttendanceType = "half day"
)

// Request - an attendance dispute raised by an employee
type Request struct {
	ID              string
	EmployeeID      string
	EmployeeName    string
	RequestDate     time.Time
	LogDate         time.Time
	RequestedStatus AttendanceType
	Status          Status
	ActionDate      *time.Time
}

// Decide validates the transition out of the current status. Approved and
// rejected are terminal.
func Decide(current Status, action Action) (Status, error) {
	if current != StatusPending {
		return current, ErrAlreadyDecided
	}
	switch action {
	case ActionApprove:
		return StatusApproved, nil
	case ActionReject:
		return StatusRejected, nil
	default:
		return current, ErrInvalidAction
	}
}

// ResolveAttendanceType falls back to the originally requested status when
// the decision carries no explicit selection.
func ResolveAttendanceType(selected AttendanceType, requested AttendanceType) AttendanceType {
	if selected == "" {
		return requested
	}
	return selected
}
