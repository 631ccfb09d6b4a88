package upstream

import (
	"context"
	"net/url"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/visit"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
)

type VisitRepository struct {
	client *upstream.Client
}

func NewVisitRepository(client *upstream.Client) *VisitRepository {
	return &VisitRepository{client: client}
}

type dayActivityDTO struct {
	Date            string `json:"date"`
	CompletedVisits int    `json:"completedVisits"`
}

type officerStatsDTO struct {
	TotalVisits          int              `json:"totalVisits"`
	CompletedVisits      int              `json:"completedVisits"`
	FullDayThreshold     int              `json:"fullDayThreshold"`
	HalfDayThreshold     int              `json:"halfDayThreshold"`
	DailyVisits          []dayActivityDTO `json:"dailyVisits"`
	VisitsByCustomerType map[string]int   `json:"visitsByCustomerType"`
}

func (r *VisitRepository) OfficerStats(ctx context.Context, employeeID string, start, end time.Time) (visit.OfficerStats, error) {
	query := url.Values{}
	query.Set("employeeId", employeeID)
	query.Set("startDate", start.Format(dateLayout))
	query.Set("endDate", end.Format(dateLayout))

	var body officerStatsDTO
	if err := r.client.GetJSON(ctx, "/visit/field-officer-stats", query, &body); err != nil {
		return visit.OfficerStats{}, err
	}

	daily := make([]visit.DayActivity, 0, len(body.DailyVisits))
	for _, day := range body.DailyVisits {
		date, err := time.Parse(dateLayout, day.Date)
		if err != nil {
			return visit.OfficerStats{}, err
		}
		daily = append(daily, visit.DayActivity{Date: date, CompletedVisits: day.CompletedVisits})
	}

	return visit.OfficerStats{
		EmployeeID:           employeeID,
		TotalVisits:          body.TotalVisits,
		CompletedVisits:      body.CompletedVisits,
		FullDayThreshold:     body.FullDayThreshold,
		HalfDayThreshold:     body.HalfDayThreshold,
		DailyActivity:        daily,
		VisitsByCustomerType: body.VisitsByCustomerType,
	}, nil
}

type visitDetailRowDTO struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	CustomerType string `json:"customerType"`
	Date         string `json:"date"`
	Purpose      string `json:"purpose"`
	Outcome      string `json:"outcome"`
}

func (r *VisitRepository) CustomerDetails(ctx context.Context, employeeID string, start, end time.Time, customerType string) ([]visit.Detail, error) {
	query := url.Values{}
	query.Set("employeeId", employeeID)
	query.Set("startDate", start.Format(dateLayout))
	query.Set("endDate", end.Format(dateLayout))
	query.Set("customerType", customerType)

	var rows []visitDetailRowDTO
	if err := r.client.GetJSON(ctx, "/visit/customer-visit-details", query, &rows); err != nil {
		return nil, err
	}

	result := make([]visit.Detail, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(dateLayout, row.Date)
		if err != nil {
			return nil, err
		}
		result = append(result, visit.Detail{
			ID:           row.ID,
			CustomerName: row.CustomerName,
			CustomerType: row.CustomerType,
			Date:         date,
			Purpose:      row.Purpose,
			Outcome:      row.Outcome,
		})
	}
	return result, nil
}
