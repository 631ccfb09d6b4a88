package approval

import (
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
)

type ListRequest struct {
	Status string
	Search string
	SortBy string
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'pending', 'approved' or 'rejected'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecisionRequest struct {
	ID             string `json:"-"`
	Action         string `json:"action"`
	AttendanceType string `json:"attendanceType,omitempty"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Action, []string{string(ActionApprove), string(ActionReject)}) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be 'approved' or 'rejected'"})
	}
	if r.AttendanceType != "" && !validator.IsInSlice(r.AttendanceType, []string{string(AttendanceFullDay), string(AttendanceHalfDay)}) {
		errs = append(errs, validator.ValidationError{Field: "attendanceType", Message: "must be 'full day' or 'half day'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	RequestDate     string `json:"requestDate"`
	LogDate         string `json:"logDate"`
	RequestedStatus string `json:"requestedStatus"`
	Status          string `json:"status"`
	ActionDate      string `json:"actionDate,omitempty"`
}

type DecisionResponse struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	AttendanceType string `json:"attendanceType"`
}
