package travel

import (
	"context"
	"log/slog"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/travel"
	"github.com/gajkesari/backoffice-go/internal/pkg/geo"
	"github.com/gajkesari/backoffice-go/internal/pkg/sse"
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DistanceResolver returns the road distance in km between two points.
type DistanceResolver interface {
	Distance(ctx context.Context, origin, destination geo.Coordinate) (float64, error)
}

type Service struct {
	repo              travel.Repository
	resolver          DistanceResolver
	hub               *sse.Hub
	maxConcurrentDays int
}

func NewService(repo travel.Repository, resolver DistanceResolver, hub *sse.Hub, maxConcurrentDays int) *Service {
	if maxConcurrentDays < 1 {
		maxConcurrentDays = 1
	}
	return &Service{
		repo:              repo,
		resolver:          resolver,
		hub:               hub,
		maxConcurrentDays: maxConcurrentDays,
	}
}

// Anomalies lists the days in range with checkouts but no recorded
// distance.
func (s *Service) Anomalies(ctx context.Context, req travel.AnomaliesRequest) ([]travel.AnomalousDayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start, _ := time.Parse("2006-01-02", req.Start)
	end, _ := time.Parse("2006-01-02", req.End)

	days, err := s.repo.DayDetails(ctx, req.EmployeeID, start, end)
	if err != nil {
		return nil, err
	}

	resp := make([]travel.AnomalousDayResponse, 0)
	for _, day := range days {
		if !day.Anomalous() {
			continue
		}
		resp = append(resp, travel.AnomalousDayResponse{
			Date:                   day.Date.Format("2006-01-02"),
			CheckoutCount:          day.CheckoutCount,
			TotalDistanceTravelled: day.TotalDistanceTravelled,
		})
	}
	return resp, nil
}

// Backfill computes and persists distances for every anomalous day in the
// range. Days run concurrently up to the configured limit; each day's
// visit pairs run sequentially. A failed day is reported in its result
// slot and stays anomalous; already persisted days are never rolled back.
func (s *Service) Backfill(ctx context.Context, req travel.BackfillRequest) (travel.BackfillResponse, error) {
	if err := req.Validate(); err != nil {
		return travel.BackfillResponse{}, err
	}
	start, _ := time.Parse("2006-01-02", req.Start)
	end, _ := time.Parse("2006-01-02", req.End)

	days, err := s.repo.DayDetails(ctx, req.EmployeeID, start, end)
	if err != nil {
		return travel.BackfillResponse{}, err
	}

	anomalous := make([]travel.DayDetail, 0)
	for _, day := range days {
		if day.Anomalous() {
			anomalous = append(anomalous, day)
		}
	}
	if len(anomalous) == 0 {
		return travel.BackfillResponse{}, travel.ErrNoAnomalousDays
	}

	results := make([]travel.BackfillDayResult, len(anomalous))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrentDays)
	for i, day := range anomalous {
		i, day := i, day
		g.Go(func() error {
			results[i] = s.backfillDay(gctx, req.EmployeeID, day)
			s.publishProgress(req.EmployeeID, results[i])
			return nil
		})
	}
	// Goroutines never return errors; failures live in the result slots.
	_ = g.Wait()

	resp := travel.BackfillResponse{
		EmployeeID: req.EmployeeID,
		Days:       make([]travel.BackfillDayResponse, 0, len(results)),
	}
	for _, result := range results {
		resp.Days = append(resp.Days, travel.BackfillDayResponse{
			Date:      result.Date.Format("2006-01-02"),
			CarKm:     result.Distances.CarKm,
			BikeKm:    result.Distances.BikeKm,
			Persisted: result.Persisted,
			Error:     result.Err,
		})
	}
	return resp, nil
}

func (s *Service) backfillDay(ctx context.Context, employeeID string, day travel.DayDetail) travel.BackfillDayResult {
	result := travel.BackfillDayResult{Date: day.Date}

	distances, err := s.computeDayDistances(ctx, day.VisitDetails)
	if err != nil {
		result.Err = err.Error()
		slog.Error("Distance back-fill failed",
			"employee_id", employeeID,
			"date", day.Date.Format("2006-01-02"),
			"error", err,
		)
		return result
	}
	result.Distances = distances

	if err := s.repo.CreateAllowance(ctx, employeeID, day.Date, distances); err != nil {
		result.Err = err.Error()
		slog.Error("Travel allowance persistence failed",
			"employee_id", employeeID,
			"date", day.Date.Format("2006-01-02"),
			"error", err,
		)
		return result
	}

	result.Persisted = true
	return result
}

// computeDayDistances walks consecutive visit pairs in recorded order and
// sums routed distances per vehicle type. Pairs missing either check-in
// coordinate, or carrying an out-of-range one, are skipped. The leading
// visit's vehicle decides the bucket.
func (s *Service) computeDayDistances(ctx context.Context, visits []travel.VisitDetail) (travel.DayDistances, error) {
	distances := travel.DayDistances{CarKm: decimal.Zero, BikeKm: decimal.Zero}

	for i := 0; i+1 < len(visits); i++ {
		from, to := visits[i], visits[i+1]
		if from.CheckinLatitude == nil || from.CheckinLongitude == nil ||
			to.CheckinLatitude == nil || to.CheckinLongitude == nil {
			continue
		}
		if !validator.IsValidCoordinate(*from.CheckinLatitude, *from.CheckinLongitude) ||
			!validator.IsValidCoordinate(*to.CheckinLatitude, *to.CheckinLongitude) {
			continue
		}

		km, err := s.resolver.Distance(ctx,
			geo.Coordinate{Latitude: *from.CheckinLatitude, Longitude: *from.CheckinLongitude},
			geo.Coordinate{Latitude: *to.CheckinLatitude, Longitude: *to.CheckinLongitude},
		)
		if err != nil {
			return distances, err
		}

		leg := decimal.NewFromFloat(km)
		if from.VehicleType == travel.VehicleCar {
			distances.CarKm = distances.CarKm.Add(leg)
		} else {
			distances.BikeKm = distances.BikeKm.Add(leg)
		}
	}

	return distances, nil
}

func (s *Service) publishProgress(employeeID string, result travel.BackfillDayResult) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(employeeID, sse.Event{
		Topic: employeeID,
		Name:  "backfill-day",
		Data: travel.BackfillDayResponse{
			Date:      result.Date.Format("2006-01-02"),
			CarKm:     result.Distances.CarKm,
			BikeKm:    result.Distances.BikeKm,
			Persisted: result.Persisted,
			Error:     result.Err,
		},
	})
}
