package salary

import (
	"github.com/gajkesari/backoffice-go/internal/domain/report"
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SummaryRangeRequest struct {
	StartDate string
	EndDate   string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func (r *SummaryRangeRequest) Validate() error {
	var errs validator.ValidationErrors

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
	if r.SortOrder != "" && !validator.IsInSlice(r.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{Field: "sortOrder", Message: "must be 'asc' or 'desc'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyBreakdownRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (r *DailyBreakdownRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
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

type SummaryRowResponse struct {
	EmployeeID        string          `json:"employeeId"`
	EmployeeName      string          `json:"employeeName"`
	PresentDays       int             `json:"presentDays"`
	FullDays          int             `json:"fullDays"`
	HalfDays          int             `json:"halfDays"`
	AbsentDays        int             `json:"absentDays"`
	BaseSalary        decimal.Decimal `json:"baseSalary"`
	TravelAllowance   decimal.Decimal `json:"travelAllowance"`
	DearnessAllowance decimal.Decimal `json:"dearnessAllowance"`
	ApprovedExpenses  decimal.Decimal `json:"approvedExpenses"`
	TotalSalary       decimal.Decimal `json:"totalSalary"`
}

type SummaryPageResponse struct {
	Rows       []SummaryRowResponse `json:"rows"`
	TotalItems int                  `json:"totalItems"`
	TotalPages int                  `json:"totalPages"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
}

type DailyRowResponse struct {
	Date                   string          `json:"date"`
	DailyBaseSalary        decimal.Decimal `json:"dailyBaseSalary"`
	TravelAllowance        decimal.Decimal `json:"travelAllowance"`
	DailyDearnessAllowance decimal.Decimal `json:"dailyDearnessAllowance"`
	ApprovedExpenses       decimal.Decimal `json:"approvedExpenses"`
	TotalDailySalary       decimal.Decimal `json:"totalDailySalary"`
}

type ReconciliationResponse struct {
	EmployeeID             string          `json:"employeeId"`
	BaseSalaryDelta        decimal.Decimal `json:"baseSalaryDelta"`
	TravelAllowanceDelta   decimal.Decimal `json:"travelAllowanceDelta"`
	DearnessAllowanceDelta decimal.Decimal `json:"dearnessAllowanceDelta"`
	ApprovedExpensesDelta  decimal.Decimal `json:"approvedExpensesDelta"`
	TotalSalaryDelta       decimal.Decimal `json:"totalSalaryDelta"`
	Clean                  bool            `json:"clean"`
}

// SummaryQuery converts request paging and sorting into a report query.
// Search applies to the employee name column.
func (r *SummaryRangeRequest) SummaryQuery() report.Query {
	page := r.Page
	if page < 1 {
		page = 1
	}
	pageSize := r.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	filters := map[string]string{}
	if r.Search != "" {
		filters["employeeName"] = r.Search
	}

	return report.Query{
		Filters:   filters,
		SortBy:    r.SortBy,
		SortOrder: report.SortOrder(r.SortOrder),
		Page:      page,
		PageSize:  pageSize,
	}
}
