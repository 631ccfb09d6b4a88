package visit

import (
	"context"
	"testing"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/visit"
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVisitRepository struct {
	stats   visit.OfficerStats
	details []visit.Detail

	gotStart        time.Time
	gotEnd          time.Time
	gotCustomerType string
}

func (f *fakeVisitRepository) OfficerStats(ctx context.Context, employeeID string, start, end time.Time) (visit.OfficerStats, error) {
	f.gotStart, f.gotEnd = start, end
	return f.stats, nil
}

func (f *fakeVisitRepository) CustomerDetails(ctx context.Context, employeeID string, start, end time.Time, customerType string) ([]visit.Detail, error) {
	f.gotCustomerType = customerType
	return f.details, nil
}

func activity(date string, visits int) visit.DayActivity {
	d, _ := time.Parse("2006-01-02", date)
	return visit.DayActivity{Date: d, CompletedVisits: visits}
}

func TestOfficerStatsDerivesDayClassification(t *testing.T) {
	// Mon 2024-03-04 through Sun 2024-03-10.
	repo := &fakeVisitRepository{stats: visit.OfficerStats{
		TotalVisits:      22,
		CompletedVisits:  18,
		FullDayThreshold: 4,
		HalfDayThreshold: 2,
		DailyActivity: []visit.DayActivity{
			activity("2024-03-04", 5),
			activity("2024-03-05", 4),
			activity("2024-03-06", 2),
			activity("2024-03-07", 0),
			activity("2024-03-08", 1),
			activity("2024-03-09", 6),
			activity("2024-03-10", 3),
		},
	}}
	service := NewService(repo, false)

	result, err := service.OfficerStats(context.Background(), visit.StatsRequest{
		EmployeeID: "emp-1",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-10",
	})

	require.NoError(t, err)
	// The Sunday drops out entirely; 1 visit is below the half threshold.
	assert.Equal(t, 3, result.FullDays)
	assert.Equal(t, 1, result.HalfDays)
	assert.Equal(t, 2, result.AbsentDays)
	assert.Equal(t, 5, result.PresentDays)
}

func TestOfficerStatsIncludesSundaysWhenConfigured(t *testing.T) {
	repo := &fakeVisitRepository{stats: visit.OfficerStats{
		FullDayThreshold: 4,
		HalfDayThreshold: 2,
		DailyActivity: []visit.DayActivity{
			activity("2024-03-09", 6),
			activity("2024-03-10", 3),
		},
	}}
	service := NewService(repo, true)

	result, err := service.OfficerStats(context.Background(), visit.StatsRequest{
		EmployeeID: "emp-1",
		StartDate:  "2024-03-09",
		EndDate:    "2024-03-10",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.FullDays)
	assert.Equal(t, 1, result.HalfDays)
	assert.Equal(t, 2, result.PresentDays)
}

func TestOfficerStatsBucketsCustomerTypes(t *testing.T) {
	repo := &fakeVisitRepository{stats: visit.OfficerStats{
		TotalVisits:     12,
		CompletedVisits: 9,
		VisitsByCustomerType: map[string]int{
			"Shop":       5,
			"Contractor": 4,
			"Engineer":   3,
		},
	}}
	service := NewService(repo, false)

	result, err := service.OfficerStats(context.Background(), visit.StatsRequest{
		EmployeeID: "emp-1",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-31",
	})

	require.NoError(t, err)
	assert.Equal(t, 12, result.TotalVisits)
	assert.Equal(t, 5, result.VisitsByType[visit.CategoryShop])
	assert.Equal(t, 3, result.VisitsByType[visit.CategoryEngineer])
	assert.Equal(t, 4, result.VisitsByType[visit.CategoryOthers])
	assert.Equal(t, 0, result.VisitsByType[visit.CategoryBuilder])
}

func TestOfficerStatsResolvesPreset(t *testing.T) {
	repo := &fakeVisitRepository{}
	service := NewService(repo, false)
	service.now = func() time.Time {
		return time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)
	}

	_, err := service.OfficerStats(context.Background(), visit.StatsRequest{
		EmployeeID: "emp-1",
		Preset:     "last-7-days",
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-07", repo.gotStart.Format("2006-01-02"))
	assert.Equal(t, "2024-03-13", repo.gotEnd.Format("2006-01-02"))
}

func TestOfficerStatsUnknownPreset(t *testing.T) {
	service := NewService(&fakeVisitRepository{}, false)

	_, err := service.OfficerStats(context.Background(), visit.StatsRequest{
		EmployeeID: "emp-1",
		Preset:     "this-quarter",
	})

	assert.ErrorIs(t, err, visit.ErrUnknownPreset)
}

func TestOfficerStatsRequiresRangeWithoutPreset(t *testing.T) {
	service := NewService(&fakeVisitRepository{}, false)

	_, err := service.OfficerStats(context.Background(), visit.StatsRequest{EmployeeID: "emp-1"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestCustomerDetailsCategorizesBeforeQuerying(t *testing.T) {
	repo := &fakeVisitRepository{details: []visit.Detail{
		{
			ID:           "v-1",
			CustomerName: "Sharma Traders",
			CustomerType: "Contractor",
			Date:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}}
	service := NewService(repo, false)

	result, err := service.CustomerDetails(context.Background(), visit.DetailsRequest{
		EmployeeID:   "emp-1",
		StartDate:    "2024-03-01",
		EndDate:      "2024-03-31",
		CustomerType: "Contractor",
	})

	require.NoError(t, err)
	assert.Equal(t, visit.CategoryOthers, repo.gotCustomerType)
	require.Len(t, result, 1)
	assert.Equal(t, "2024-03-05", result[0].Date)
}
