package upstream

import (
	"context"
	"net/url"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/salary"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type SalaryRepository struct {
	client *upstream.Client
}

func NewSalaryRepository(client *upstream.Client) *SalaryRepository {
	return &SalaryRepository{client: client}
}

type summaryRowDTO struct {
	EmployeeID        string   `json:"employeeId"`
	EmployeeName      string   `json:"employeeName"`
	PresentDays       int      `json:"presentDays"`
	FullDays          int      `json:"fullDays"`
	HalfDays          int      `json:"halfDays"`
	AbsentDays        int      `json:"absentDays"`
	FullMonthSalary   float64  `json:"fullMonthSalary"`
	DaysWorked        float64  `json:"daysWorked"`
	DaysInMonth       int      `json:"daysInMonth"`
	CarDistanceKm     float64  `json:"carDistanceKm"`
	BikeDistanceKm    float64  `json:"bikeDistanceKm"`
	CarRatePerKm      float64  `json:"carRatePerKm"`
	BikeRatePerKm     float64  `json:"bikeRatePerKm"`
	BaseSalary        *float64 `json:"baseSalary"`
	TravelAllowance   *float64 `json:"travelAllowance"`
	DearnessAllowance float64  `json:"dearnessAllowance"`
	ApprovedExpenses  float64  `json:"approvedExpenses"`
	TotalSalary       *float64 `json:"totalSalary"`
}

// components fills in base salary and travel allowance for a row. Newer
// backend versions send both precomputed; older ones send only the raw
// inputs (full-month salary, distances, rates) and leave the computed
// fields null.
func (row summaryRowDTO) components() (base, travel decimal.Decimal, err error) {
	if row.BaseSalary != nil {
		base = decimal.NewFromFloat(*row.BaseSalary).Round(0)
	} else {
		base, err = salary.ProRateBaseSalary(decimal.NewFromFloat(row.FullMonthSalary), row.DaysWorked, row.DaysInMonth)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
	}

	if row.TravelAllowance != nil {
		travel = decimal.NewFromFloat(*row.TravelAllowance).Round(0)
	} else {
		travel = salary.TravelAllowance(
			decimal.NewFromFloat(row.CarDistanceKm),
			decimal.NewFromFloat(row.BikeDistanceKm),
			salary.Rates{
				CarPerKm:  decimal.NewFromFloat(row.CarRatePerKm),
				BikePerKm: decimal.NewFromFloat(row.BikeRatePerKm),
			},
		)
	}
	return base, travel, nil
}

func (r *SalaryRepository) SummaryRange(ctx context.Context, start, end time.Time) ([]salary.SummaryRow, error) {
	query := url.Values{}
	query.Set("startDate", start.Format(dateLayout))
	query.Set("endDate", end.Format(dateLayout))

	var rows []summaryRowDTO
	if err := r.client.GetJSON(ctx, "/salary-calculation/manual-summary-range", query, &rows); err != nil {
		return nil, err
	}

	result := make([]salary.SummaryRow, 0, len(rows))
	for _, row := range rows {
		base, travel, err := row.components()
		if err != nil {
			return nil, err
		}
		dearness := decimal.NewFromFloat(row.DearnessAllowance).Round(0)
		expenses := decimal.NewFromFloat(row.ApprovedExpenses).Round(0)

		// A total sent by the backend is trusted as-is; otherwise it is
		// the sum of the independently rounded components.
		var total decimal.Decimal
		if row.TotalSalary != nil {
			v := decimal.NewFromFloat(*row.TotalSalary)
			total = salary.ProvidedTotal(&v)
		} else {
			total = salary.TotalSalary(base, travel, dearness, expenses)
		}

		result = append(result, salary.SummaryRow{
			EmployeeID:        row.EmployeeID,
			EmployeeName:      row.EmployeeName,
			PresentDays:       row.PresentDays,
			FullDays:          row.FullDays,
			HalfDays:          row.HalfDays,
			AbsentDays:        row.AbsentDays,
			BaseSalary:        base,
			TravelAllowance:   travel,
			DearnessAllowance: dearness,
			ApprovedExpenses:  expenses,
			TotalSalary:       total,
		})
	}
	return result, nil
}

type dailyRowDTO struct {
	Date                   string   `json:"date"`
	DailyBaseSalary        float64  `json:"dailyBaseSalary"`
	TravelAllowance        float64  `json:"travelAllowance"`
	DailyDearnessAllowance float64  `json:"dailyDearnessAllowance"`
	ApprovedExpenses       float64  `json:"approvedExpenses"`
	TotalDailySalary       *float64 `json:"totalDailySalary"`
}

func (r *SalaryRepository) DailyBreakdown(ctx context.Context, employeeID string, start, end time.Time) ([]salary.DailyRow, error) {
	query := url.Values{}
	query.Set("employeeId", employeeID)
	query.Set("startDate", start.Format(dateLayout))
	query.Set("endDate", end.Format(dateLayout))

	var rows []dailyRowDTO
	if err := r.client.GetJSON(ctx, "/salary-calculation/daily-breakdown", query, &rows); err != nil {
		return nil, err
	}

	result := make([]salary.DailyRow, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(dateLayout, row.Date)
		if err != nil {
			return nil, err
		}
		base := decimal.NewFromFloat(row.DailyBaseSalary).Round(0)
		travel := decimal.NewFromFloat(row.TravelAllowance).Round(0)
		dearness := decimal.NewFromFloat(row.DailyDearnessAllowance).Round(0)
		expenses := decimal.NewFromFloat(row.ApprovedExpenses).Round(0)

		var total decimal.Decimal
		if row.TotalDailySalary != nil {
			v := decimal.NewFromFloat(*row.TotalDailySalary)
			total = salary.ProvidedTotal(&v)
		} else {
			total = salary.TotalSalary(base, travel, dearness, expenses)
		}

		result = append(result, salary.DailyRow{
			Date:                   date,
			DailyBaseSalary:        base,
			TravelAllowance:        travel,
			DailyDearnessAllowance: dearness,
			ApprovedExpenses:       expenses,
			TotalDailySalary:       total,
		})
	}
	return result, nil
}
