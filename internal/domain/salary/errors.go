package salary

import "errors"

var (
	ErrInvalidDateRange   = errors.New("invalid salary date range")
	ErrEmployeeRequired   = errors.New("employee id is required")
	ErrSummaryNotFound    = errors.New("salary summary not found for employee")
	ErrInvalidDaysInMonth = errors.New("days in month must be positive")
)
