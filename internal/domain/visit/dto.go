package visit

import (
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
)

type StatsRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Preset     string
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if r.Preset == "" {
		if validator.IsEmpty(r.StartDate) || validator.IsEmpty(r.EndDate) {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate and endDate are required without a preset"})
		} else if _, _, ok := validator.IsValidDateRange(r.StartDate, r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must form a valid YYYY-MM-DD range with endDate"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DetailsRequest struct {
	EmployeeID   string
	StartDate    string
	EndDate      string
	CustomerType string
}

func (r *DetailsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.CustomerType) {
		errs = append(errs, validator.ValidationError{Field: "customerType", Message: "is required"})
	}
	if _, _, ok := validator.IsValidDateRange(r.StartDate, r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must form a valid YYYY-MM-DD range with endDate"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatsResponse struct {
	EmployeeID      string         `json:"employeeId"`
	TotalVisits     int            `json:"totalVisits"`
	CompletedVisits int            `json:"completedVisits"`
	PresentDays     int            `json:"presentDays"`
	FullDays        int            `json:"fullDays"`
	HalfDays        int            `json:"halfDays"`
	AbsentDays      int            `json:"absentDays"`
	VisitsByType    map[string]int `json:"visitsByCustomerType"`
}

type DetailResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	CustomerType string `json:"customerType"`
	Date         string `json:"date"`
	Purpose      string `json:"purpose"`
	Outcome      string `json:"outcome"`
}
