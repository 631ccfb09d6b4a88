package travel

import (
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AnomaliesRequest struct {
	EmployeeID string
	Start      string
	End        string
}

func (r *AnomaliesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.Start) {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "is required"})
	}
	if validator.IsEmpty(r.End) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "is required"})
	}
	if len(errs) == 0 {
		if _, _, ok := validator.IsValidDateRange(r.Start, r.End); !ok {
			errs = append(errs, validator.ValidationError{Field: "start", Message: "must form a valid YYYY-MM-DD range with end"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BackfillRequest struct {
	EmployeeID string `json:"employeeId"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

func (r *BackfillRequest) Validate() error {
	req := AnomaliesRequest{EmployeeID: r.EmployeeID, Start: r.Start, End: r.End}
	return req.Validate()
}

type AnomalousDayResponse struct {
	Date                   string          `json:"date"`
	CheckoutCount          int             `json:"checkoutCount"`
	TotalDistanceTravelled decimal.Decimal `json:"totalDistanceTravelled"`
}

type BackfillDayResponse struct {
	Date      string          `json:"date"`
	CarKm     decimal.Decimal `json:"carDistanceKm"`
	BikeKm    decimal.Decimal `json:"bikeDistanceKm"`
	Persisted bool            `json:"persisted"`
	Error     string          `json:"error,omitempty"`
}

type BackfillResponse struct {
	EmployeeID string                `json:"employeeId"`
	Days       []BackfillDayResponse `json:"days"`
}
