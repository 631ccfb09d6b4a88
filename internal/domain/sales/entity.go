package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record - one sale entry
type Record struct {
	ID          string
	StoreID     string
	StoreName   string
	StoreCity   string
	StoreState  string
	EmployeeID  string
	OfficerName string
	Tons        decimal.Decimal
	Date        time.Time
}

// Store - a dealer outlet
type Store struct {
	ID        string
	Name      string
	City      string
	State     string
	OfficerID string
}

// StoreSummary - total tons sold at one store over a range. City and state
// come from a separate store-details lookup that may fail independently;
// Partial marks rows where that enrichment is missing.
type StoreSummary struct {
	StoreID   string
	StoreName string
	City      string
	State     string
	TotalTons decimal.Decimal
	Partial   bool
}
