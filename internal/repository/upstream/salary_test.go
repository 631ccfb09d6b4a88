package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/salary"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return upstream.NewClient(server.URL, 5*time.Second)
}

func TestSummaryRangeMapsAndRoundsComponents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/salary-calculation/manual-summary-range", r.URL.Path)
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-03-31", r.URL.Query().Get("endDate"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"employeeId": "emp-1",
				"employeeName": "Anita Desai",
				"presentDays": 22,
				"baseSalary": 20000.4,
				"travelAllowance": 512.5,
				"dearnessAllowance": 199.9,
				"approvedExpenses": 0,
				"totalSalary": 20713.2
			},
			{
				"employeeId": "emp-2",
				"employeeName": "Rohan Verma",
				"presentDays": 20,
				"baseSalary": 18000,
				"travelAllowance": 0,
				"totalSalary": null
			}
		]`))
	})
	repo := NewSalaryRepository(client)

	start, _ := time.Parse("2006-01-02", "2024-03-01")
	end, _ := time.Parse("2006-01-02", "2024-03-31")
	rows, err := repo.SummaryRange(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].BaseSalary.Equal(decimal.NewFromInt(20000)), "baseSalary = %s", rows[0].BaseSalary)
	assert.True(t, rows[0].TravelAllowance.Equal(decimal.NewFromInt(513)))
	assert.True(t, rows[0].DearnessAllowance.Equal(decimal.NewFromInt(200)))
	assert.True(t, rows[0].TotalSalary.Equal(decimal.NewFromInt(20713)))

	// Without a backend total the components are summed instead.
	assert.True(t, rows[1].TotalSalary.Equal(decimal.NewFromInt(18000)))
}

func TestSummaryRangeComputesComponentsFromRawInputs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"employeeId": "emp-1",
				"employeeName": "Anita Desai",
				"fullMonthSalary": 31000,
				"daysWorked": 31,
				"daysInMonth": 31,
				"carDistanceKm": 100,
				"bikeDistanceKm": 0,
				"carRatePerKm": 5,
				"bikeRatePerKm": 2.5,
				"dearnessAllowance": 500,
				"approvedExpenses": 200,
				"baseSalary": null,
				"travelAllowance": null,
				"totalSalary": null
			},
			{
				"employeeId": "emp-2",
				"employeeName": "Rohan Verma",
				"fullMonthSalary": 30000,
				"daysWorked": 20,
				"daysInMonth": 30,
				"carDistanceKm": 10.3,
				"bikeDistanceKm": 40.1,
				"carRatePerKm": 5,
				"bikeRatePerKm": 2.5,
				"baseSalary": null,
				"travelAllowance": null,
				"totalSalary": null
			}
		]`))
	})
	repo := NewSalaryRepository(client)

	start, _ := time.Parse("2006-01-02", "2024-03-01")
	end, _ := time.Parse("2006-01-02", "2024-03-31")
	rows, err := repo.SummaryRange(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].BaseSalary.Equal(decimal.NewFromInt(31000)))
	assert.True(t, rows[0].TravelAllowance.Equal(decimal.NewFromInt(500)))
	assert.True(t, rows[0].TotalSalary.Equal(decimal.NewFromInt(32200)), "totalSalary = %s", rows[0].TotalSalary)

	// 10.3*5 rounds to 52, 40.1*2.5 rounds to 100, each leg on its own.
	assert.True(t, rows[1].BaseSalary.Equal(decimal.NewFromInt(20000)))
	assert.True(t, rows[1].TravelAllowance.Equal(decimal.NewFromInt(152)))
	assert.True(t, rows[1].TotalSalary.Equal(decimal.NewFromInt(20152)))
}

func TestSummaryRangeRejectsRowMissingDaysInMonth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"employeeId": "emp-1", "employeeName": "Anita Desai", "baseSalary": null, "totalSalary": null}
		]`))
	})
	repo := NewSalaryRepository(client)

	start, _ := time.Parse("2006-01-02", "2024-03-01")
	end, _ := time.Parse("2006-01-02", "2024-03-31")
	_, err := repo.SummaryRange(context.Background(), start, end)

	assert.ErrorIs(t, err, salary.ErrInvalidDaysInMonth)
}

func TestDailyBreakdownParsesDates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/salary-calculation/daily-breakdown", r.URL.Path)
		assert.Equal(t, "emp-1", r.URL.Query().Get("employeeId"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date": "2024-03-04", "dailyBaseSalary": 1000, "totalDailySalary": 1050.6},
			{"date": "2024-03-05", "dailyBaseSalary": 1000, "travelAllowance": 52.5}
		]`))
	})
	repo := NewSalaryRepository(client)

	start, _ := time.Parse("2006-01-02", "2024-03-01")
	end, _ := time.Parse("2006-01-02", "2024-03-31")
	rows, err := repo.DailyBreakdown(context.Background(), "emp-1", start, end)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-04", rows[0].Date.Format("2006-01-02"))
	assert.True(t, rows[0].TotalDailySalary.Equal(decimal.NewFromInt(1051)))
	// No backend total on the second day, so components sum up instead.
	assert.True(t, rows[1].TotalDailySalary.Equal(decimal.NewFromInt(1053)))
}

func TestDayDetailsDefaultsVehicleToBike(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/travel-allowance/getForEmployeeAndDate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"dateDetails": [
				{
					"date": "2024-03-04",
					"checkoutCount": 2,
					"totalDistanceTravelled": 0,
					"visitDetails": [
						{"checkinLatitude": 12.97, "checkinLongitude": 77.59, "vehicleType": "Car"},
						{"checkinLatitude": 12.98, "checkinLongitude": 77.60, "vehicleType": ""}
					]
				}
			]
		}`))
	})
	repo := NewTravelRepository(client)

	start, _ := time.Parse("2006-01-02", "2024-03-01")
	end, _ := time.Parse("2006-01-02", "2024-03-31")
	days, err := repo.DayDetails(context.Background(), "emp-1", start, end)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.True(t, days[0].Anomalous())
	require.Len(t, days[0].VisitDetails, 2)
	assert.Equal(t, "Car", string(days[0].VisitDetails[0].VehicleType))
	assert.Equal(t, "Bike", string(days[0].VisitDetails[1].VehicleType))
}
