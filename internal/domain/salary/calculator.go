package salary

import "github.com/shopspring/decimal"

// ProRateBaseSalary computes the rounded pro-rated base pay for the days
// actually worked. daysInMonth must be positive; daysWorked is passed
// through unclamped even when the caller supplies inconsistent data.
func ProRateBaseSalary(fullMonthSalary decimal.Decimal, daysWorked float64, daysInMonth int) (decimal.Decimal, error) {
	if daysInMonth <= 0 {
		return decimal.Zero, ErrInvalidDaysInMonth
	}

	perDay := fullMonthSalary.Div(decimal.NewFromInt(int64(daysInMonth)))
	return perDay.Mul(decimal.NewFromFloat(daysWorked)).Round(0), nil
}

// TravelAllowance reimburses car and bike distance at their respective
// rates. Each leg is rounded on its own before the two are summed.
func TravelAllowance(carKm, bikeKm decimal.Decimal, rates Rates) decimal.Decimal {
	car := carKm.Mul(rates.CarPerKm).Round(0)
	bike := bikeKm.Mul(rates.BikePerKm).Round(0)
	return car.Add(bike)
}

// TotalSalary sums the four components, rounding each independently first.
// The total can therefore differ by a unit or so from rounding the raw sum.
func TotalSalary(base, travel, dearness, expenses decimal.Decimal) decimal.Decimal {
	return base.Round(0).
		Add(travel.Round(0)).
		Add(dearness.Round(0)).
		Add(expenses.Round(0))
}

// ProvidedTotal rounds a total the backend already computed. A missing
// total counts as zero.
func ProvidedTotal(total *decimal.Decimal) decimal.Decimal {
	if total == nil {
		return decimal.Zero
	}
	return total.Round(0)
}

// reconciliationTolerance is the per-component delta attributable to
// independent rounding alone.
var reconciliationTolerance = decimal.NewFromInt(1)

// Reconcile recomputes a range summary from its daily rows and reports the
// per-component deltas. A summary is clean when every delta stays within
// the rounding tolerance times the number of daily rows.
func Reconcile(summary SummaryRow, dailies []DailyRow) Reconciliation {
	var base, travel, dearness, expenses, total decimal.Decimal
	for _, day := range dailies {
		base = base.Add(day.DailyBaseSalary)
		travel = travel.Add(day.TravelAllowance)
		dearness = dearness.Add(day.DailyDearnessAllowance)
		expenses = expenses.Add(day.ApprovedExpenses)
		total = total.Add(day.TotalDailySalary)
	}

	rec := Reconciliation{
		BaseSalaryDelta:        summary.BaseSalary.Sub(base),
		TravelAllowanceDelta:   summary.TravelAllowance.Sub(travel),
		DearnessAllowanceDelta: summary.DearnessAllowance.Sub(dearness),
		ApprovedExpensesDelta:  summary.ApprovedExpenses.Sub(expenses),
		TotalSalaryDelta:       summary.TotalSalary.Sub(total),
	}

	band := reconciliationTolerance.Mul(decimal.NewFromInt(int64(max(len(dailies), 1))))
	rec.Clean = rec.BaseSalaryDelta.Abs().LessThanOrEqual(band) &&
		rec.TravelAllowanceDelta.Abs().LessThanOrEqual(band) &&
		rec.DearnessAllowanceDelta.Abs().LessThanOrEqual(band) &&
		rec.ApprovedExpensesDelta.Abs().LessThanOrEqual(band) &&
		rec.TotalSalaryDelta.Abs().LessThanOrEqual(band)
	return rec
}
