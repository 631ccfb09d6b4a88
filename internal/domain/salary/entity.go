package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryRow - one employee's salary summary over a date range
type SummaryRow struct {
	EmployeeID        string
	EmployeeName      string
	PresentDays       int
	FullDays          int
	HalfDays          int
	AbsentDays        int
	BaseSalary        decimal.Decimal
	TravelAllowance   decimal.Decimal
	DearnessAllowance decimal.Decimal
	ApprovedExpenses  decimal.Decimal
	TotalSalary       decimal.Decimal
}

// DailyRow - one employee's salary breakdown for a single day
type DailyRow struct {
	Date                   time.Time
	DailyBaseSalary        decimal.Decimal
	TravelAllowance        decimal.Decimal
	DailyDearnessAllowance decimal.Decimal
	ApprovedExpenses       decimal.Decimal
	TotalDailySalary       decimal.Decimal
}

// Rates - per-km reimbursement rates by vehicle type
type Rates struct {
	CarPerKm  decimal.Decimal
	BikePerKm decimal.Decimal
}

// Reconciliation compares a range summary against the sum of its daily
// rows. Deltas within the rounding band are considered clean.
type Reconciliation struct {
	BaseSalaryDelta        decimal.Decimal
	TravelAllowanceDelta   decimal.Decimal
	DearnessAllowanceDelta decimal.Decimal
	ApprovedExpensesDelta  decimal.Decimal
	TotalSalaryDelta       decimal.Decimal
	Clean                  bool
}
