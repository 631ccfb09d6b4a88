package upstream

import (
	"context"
	"net/url"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/travel"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
	"github.com/shopspring/decimal"
)

type TravelRepository struct {
	client *upstream.Client
}

func NewTravelRepository(client *upstream.Client) *TravelRepository {
	return &TravelRepository{client: client}
}

type visitDetailDTO struct {
	CheckinLatitude  *float64 `json:"checkinLatitude"`
	CheckinLongitude *float64 `json:"checkinLongitude"`
	VehicleType      string   `json:"vehicleType"`
}

type dayDetailDTO struct {
	Date                    string           `json:"date"`
	CheckoutCount           int              `json:"checkoutCount"`
	TotalDistanceTravelled  float64          `json:"totalDistanceTravelled"`
	DistanceTravelledByCar  float64          `json:"distanceTravelledByCar"`
	DistanceTravelledByBike float64          `json:"distanceTravelledByBike"`
	VisitDetails            []visitDetailDTO `json:"visitDetails"`
}

type dayDetailsEnvelope struct {
	DateDetails []dayDetailDTO `json:"dateDetails"`
}

func (r *TravelRepository) DayDetails(ctx context.Context, employeeID string, start, end time.Time) ([]travel.DayDetail, error) {
	query := url.Values{}
	query.Set("employeeId", employeeID)
	query.Set("start", start.Format(dateLayout))
	query.Set("end", end.Format(dateLayout))

	var envelope dayDetailsEnvelope
	if err := r.client.GetJSON(ctx, "/travel-allowance/getForEmployeeAndDate", query, &envelope); err != nil {
		return nil, err
	}

	result := make([]travel.DayDetail, 0, len(envelope.DateDetails))
	for _, day := range envelope.DateDetails {
		date, err := time.Parse(dateLayout, day.Date)
		if err != nil {
			return nil, err
		}

		visits := make([]travel.VisitDetail, 0, len(day.VisitDetails))
		for _, visit := range day.VisitDetails {
			vehicle := travel.VehicleType(visit.VehicleType)
			if vehicle == "" {
				vehicle = travel.VehicleBike
			}
			visits = append(visits, travel.VisitDetail{
				CheckinLatitude:  visit.CheckinLatitude,
				CheckinLongitude: visit.CheckinLongitude,
				VehicleType:      vehicle,
			})
		}

		result = append(result, travel.DayDetail{
			Date:                    date,
			CheckoutCount:           day.CheckoutCount,
			TotalDistanceTravelled:  decimal.NewFromFloat(day.TotalDistanceTravelled),
			DistanceTravelledByCar:  decimal.NewFromFloat(day.DistanceTravelledByCar),
			DistanceTravelledByBike: decimal.NewFromFloat(day.DistanceTravelledByBike),
			VisitDetails:            visits,
		})
	}
	return result, nil
}

type createAllowanceDTO struct {
	EmployeeID              string          `json:"employeeId"`
	Date                    string          `json:"date"`
	DistanceTravelledByCar  decimal.Decimal `json:"distanceTravelledByCar"`
	DistanceTravelledByBike decimal.Decimal `json:"distanceTravelledByBike"`
}

func (r *TravelRepository) CreateAllowance(ctx context.Context, employeeID string, date time.Time, distances travel.DayDistances) error {
	body := createAllowanceDTO{
		EmployeeID:              employeeID,
		Date:                    date.Format(dateLayout),
		DistanceTravelledByCar:  distances.CarKm,
		DistanceTravelledByBike: distances.BikeKm,
	}
	return r.client.PostJSON(ctx, "/travel-allowance/create", body, nil)
}
