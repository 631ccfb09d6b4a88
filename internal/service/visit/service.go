package visit

import (
	"context"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/attendance"
	"github.com/gajkesari/backoffice-go/internal/domain/visit"
)

type Service struct {
	repo           visit.Repository
	includeSundays bool
	now            func() time.Time
}

func NewService(repo visit.Repository, includeSundays bool) *Service {
	return &Service{repo: repo, includeSundays: includeSundays, now: time.Now}
}

// OfficerStats returns a field officer's visit activity over a range or a
// named preset. Customer types are folded into the display categories and
// the day classification is derived from the per-day visit counts.
func (s *Service) OfficerStats(ctx context.Context, req visit.StatsRequest) (visit.StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return visit.StatsResponse{}, err
	}

	start, end, err := s.resolveRange(req)
	if err != nil {
		return visit.StatsResponse{}, err
	}

	stats, err := s.repo.OfficerStats(ctx, req.EmployeeID, start, end)
	if err != nil {
		return visit.StatsResponse{}, err
	}

	days := make([]attendance.Day, 0, len(stats.DailyActivity))
	for _, day := range stats.DailyActivity {
		days = append(days, attendance.Day{Date: day.Date, CompletedVisits: day.CompletedVisits})
	}
	tally := attendance.TallyRange(days, attendance.Thresholds{
		FullDay: stats.FullDayThreshold,
		HalfDay: stats.HalfDayThreshold,
	}, s.includeSundays)

	return visit.StatsResponse{
		EmployeeID:      req.EmployeeID,
		TotalVisits:     stats.TotalVisits,
		CompletedVisits: stats.CompletedVisits,
		PresentDays:     tally.PresentDays,
		FullDays:        tally.FullDays,
		HalfDays:        tally.HalfDays,
		AbsentDays:      tally.AbsentDays,
		VisitsByType:    visit.BucketByCategory(stats.VisitsByCustomerType),
	}, nil
}

// CustomerDetails lists the visits behind one display category.
func (s *Service) CustomerDetails(ctx context.Context, req visit.DetailsRequest) ([]visit.DetailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category := visit.Categorize(req.CustomerType)
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	details, err := s.repo.CustomerDetails(ctx, req.EmployeeID, start, end, category)
	if err != nil {
		return nil, err
	}

	resp := make([]visit.DetailResponse, 0, len(details))
	for _, detail := range details {
		resp = append(resp, visit.DetailResponse{
			ID:           detail.ID,
			CustomerName: detail.CustomerName,
			CustomerType: detail.CustomerType,
			Date:         detail.Date.Format("2006-01-02"),
			Purpose:      detail.Purpose,
			Outcome:      detail.Outcome,
		})
	}
	return resp, nil
}

func (s *Service) resolveRange(req visit.StatsRequest) (time.Time, time.Time, error) {
	if req.Preset != "" {
		start, end, ok := visit.RangePreset(req.Preset).Resolve(s.now())
		if !ok {
			return time.Time{}, time.Time{}, visit.ErrUnknownPreset
		}
		return start, end, nil
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	return start, end, nil
}
