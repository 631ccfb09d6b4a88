package enquiry

import (
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ListRequest struct {
	StoreName  string
	Taluka     string
	SheetName  string
	FileName   string
	StartMonth string
	EndMonth   string
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartMonth != "" || r.EndMonth != "" {
		start, okStart := validator.IsValidMonthKey(r.StartMonth)
		end, okEnd := validator.IsValidMonthKey(r.EndMonth)
		if !okStart || !okEnd {
			errs = append(errs, validator.ValidationError{Field: "startMonth", Message: "both startMonth and endMonth must look like 'Mar-24'"})
		} else if start.After(end) {
			errs = append(errs, validator.ValidationError{Field: "startMonth", Message: "must not follow endMonth"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TextFilters extracts the free-text filters of the request.
func (r *ListRequest) TextFilters() TextFilters {
	return TextFilters{
		StoreName: r.StoreName,
		Taluka:    r.Taluka,
		SheetName: r.SheetName,
		FileName:  r.FileName,
	}
}

type RowResponse struct {
	ID            string                     `json:"id"`
	DealerName    string                     `json:"dealerName"`
	Taluka        string                     `json:"taluka"`
	City          string                     `json:"city"`
	State         string                     `json:"state"`
	Population    int                        `json:"population"`
	Expenses      decimal.Decimal            `json:"expenses"`
	ContactNumber string                     `json:"contactNumber"`
	FileName      string                     `json:"fileName"`
	SheetName     string                     `json:"sheetName"`
	Sales         map[string]decimal.Decimal `json:"sales"`
	TotalSales    decimal.Decimal            `json:"totalSales"`
}

type ListResponse struct {
	Rows         []RowResponse `json:"rows"`
	MonthColumns []string      `json:"monthColumns"`
}

type UploadResponse struct {
	Message string `json:"message"`
}
