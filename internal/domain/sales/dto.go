package sales

import (
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ListRequest filters are conjunctive substring matches.
type ListRequest struct {
	StoreName   string
	OfficerName string
	City        string
	State       string
	Page        int
}

type CreateRequest struct {
	EmployeeID      string          `json:"employeeId"`
	StoreID         string          `json:"storeId"`
	OfficeManagerID string          `json:"officeManagerId"`
	Tons            decimal.Decimal `json:"tons"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "storeId", Message: "is required"})
	}
	if validator.IsEmpty(r.OfficeManagerID) {
		errs = append(errs, validator.ValidationError{Field: "officeManagerId", Message: "is required"})
	}
	if !r.Tons.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "tons", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryRequest struct {
	StoreID   string
	StartDate string
	EndDate   string
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "storeId", Message: "is required"})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "is required"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "is required"})
	}
	if len(errs) == 0 {
		if _, _, ok := validator.IsValidDateRange(r.StartDate, r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must form a valid YYYY-MM-DD range with endDate"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"storeId"`
	StoreName   string          `json:"storeName"`
	StoreCity   string          `json:"storeCity"`
	StoreState  string          `json:"storeState"`
	EmployeeID  string          `json:"employeeId"`
	OfficerName string          `json:"officerName"`
	Tons        decimal.Decimal `json:"tons"`
	Date        string          `json:"date"`
}

type StoreSummaryResponse struct {
	StoreID   string          `json:"storeId"`
	StoreName string          `json:"storeName"`
	City      string          `json:"city,omitempty"`
	State     string          `json:"state,omitempty"`
	TotalTons decimal.Decimal `json:"totalTons"`
	Partial   bool            `json:"partial"`
}

type StoreResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

type OfficerResponse struct {
	StoreID   string `json:"storeId"`
	OfficerID string `json:"officerId"`
}
