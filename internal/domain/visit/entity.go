package visit

import "time"

// Display categories for customer types. Anything unrecognised lands in
// Others.
const (
	CategoryShop      = "Shop"
	CategorySiteVisit = "Site Visit"
	CategoryArchitect = "Architect"
	CategoryEngineer  = "Engineer"
	CategoryBuilder   = "Builder"
	CategoryOthers    = "Others"
)

// Categories in display order.
var Categories = []string{
	CategoryShop,
	CategorySiteVisit,
	CategoryArchitect,
	CategoryEngineer,
	CategoryBuilder,
	CategoryOthers,
}

// DayActivity - one calendar day's completed visit count
type DayActivity struct {
	Date            time.Time
	CompletedVisits int
}

// OfficerStats - one field officer's activity over a range. The day
// classification (full/half/absent) is derived here from DailyActivity
// against the thresholds, not read from the backend.
type OfficerStats struct {
	EmployeeID           string
	TotalVisits          int
	CompletedVisits      int
	FullDayThreshold     int
	HalfDayThreshold     int
	DailyActivity        []DayActivity
	VisitsByCustomerType map[string]int
}

// Detail - one customer visit
type Detail struct {
	ID           string
	CustomerName string
	CustomerType string
	Date         time.Time
	Purpose      string
	Outcome      string
}

// Categorize maps a raw customer type to its display category.
func Categorize(customerType string) string {
	switch customerType {
	case CategoryShop, CategorySiteVisit, CategoryArchitect, CategoryEngineer, CategoryBuilder:
		return customerType
	default:
		return CategoryOthers
	}
}

// BucketByCategory folds raw per-customer-type counts into the fixed
// display categories. Every category is present in the result, zero or not.
func BucketByCategory(byCustomerType map[string]int) map[string]int {
	buckets := make(map[string]int, len(Categories))
	for _, category := range Categories {
		buckets[category] = 0
	}
	for customerType, count := range byCustomerType {
		buckets[Categorize(customerType)] += count
	}
	return buckets
}
