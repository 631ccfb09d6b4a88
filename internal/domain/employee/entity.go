package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

const RoleFieldOfficer = "Field Officer"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee - read-only HR record sourced from the backend
type Employee struct {
	ID                    string
	FirstName             string
	LastName              string
	Role                  string
	Email                 string
	Phone                 string
	City                  string
	State                 string
	DateOfJoining         time.Time
	FullMonthSalary       decimal.Decimal
	TravelAllowanceRate   *decimal.Decimal
	DearnessAllowanceRate *decimal.Decimal
	Status                Status
}

// FullName joins first and last name, tolerating a missing last name.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
