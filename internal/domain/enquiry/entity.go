package enquiry

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthKeyLayout formats a month column key, e.g. "Mar-24".
const MonthKeyLayout = "Jan-06"

// Enquiry - one dealer enquiry row with sparse sales by month
type Enquiry struct {
	ID            string
	DealerName    string
	Taluka        string
	City          string
	State         string
	Population    int
	Expenses      decimal.Decimal
	ContactNumber string
	FileName      string
	SheetName     string
	Sales         map[string]decimal.Decimal
}

// TotalSales sums the sparse per-month sales of one row.
func (e Enquiry) TotalSales() decimal.Decimal {
	total := decimal.Zero
	for _, v := range e.Sales {
		total = total.Add(v)
	}
	return total
}

// MonthColumns collects every month key present across rows, sorted
// chronologically. Keys that do not parse are dropped.
func MonthColumns(rows []Enquiry) []string {
	seen := make(map[string]time.Time)
	for _, row := range rows {
		for key := range row.Sales {
			if _, ok := seen[key]; ok {
				continue
			}
			month, err := time.Parse(MonthKeyLayout, key)
			if err != nil {
				continue
			}
			seen[key] = month
		}
	}

	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Slice(columns, func(i, j int) bool {
		return seen[columns[i]].Before(seen[columns[j]])
	})
	return columns
}
