package travel

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleType of a visit. Unset vehicle types count as bike.
type VehicleType string

const (
	VehicleCar  VehicleType = "Car"
	VehicleBike VehicleType = "Bike"
)

// VisitDetail - one customer visit with its check-in location
type VisitDetail struct {
	CheckinLatitude  *float64
	CheckinLongitude *float64
	VehicleType      VehicleType
}

// DayDetail - one day of an employee's travel activity
type DayDetail struct {
	Date                    time.Time
	CheckoutCount           int
	TotalDistanceTravelled  decimal.Decimal
	DistanceTravelledByCar  decimal.Decimal
	DistanceTravelledByBike decimal.Decimal
	VisitDetails            []VisitDetail
}

// Anomalous reports whether a day has checkouts but no recorded distance,
// making it eligible for back-fill.
func (d DayDetail) Anomalous() bool {
	return d.CheckoutCount > 0 && d.TotalDistanceTravelled.IsZero()
}

// DayDistances - the back-filled distances for one day
type DayDistances struct {
	CarKm  decimal.Decimal
	BikeKm decimal.Decimal
}

// BackfillDayResult records one day's outcome within a back-fill run.
// A failed day stays anomalous; earlier persisted days are not rolled back.
type BackfillDayResult struct {
	Date      time.Time
	Distances DayDistances
	Persisted bool
	Err       string
}
