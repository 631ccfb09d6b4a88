package salary

import (
	"context"
	"log/slog"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/report"
	"github.com/gajkesari/backoffice-go/internal/domain/salary"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo salary.Repository
}

func NewService(repo salary.Repository) *Service {
	return &Service{repo: repo}
}

// summaryTable is the report view over summary rows. The employee name is
// the default sort key.
var summaryTable = report.Table[salary.SummaryRow]{
	Columns: map[string]report.Column[salary.SummaryRow]{
		"employeeName": {
			Kind:   report.Text,
			String: func(r salary.SummaryRow) string { return r.EmployeeName },
		},
		"presentDays": {
			Kind:   report.Number,
			String: func(r salary.SummaryRow) string { return "" },
			Number: func(r salary.SummaryRow) float64 { return float64(r.PresentDays) },
		},
		"baseSalary": {
			Kind:   report.Number,
			String: func(r salary.SummaryRow) string { return "" },
			Number: func(r salary.SummaryRow) float64 { return r.BaseSalary.InexactFloat64() },
		},
		"travelAllowance": {
			Kind:   report.Number,
			String: func(r salary.SummaryRow) string { return "" },
			Number: func(r salary.SummaryRow) float64 { return r.TravelAllowance.InexactFloat64() },
		},
		"totalSalary": {
			Kind:   report.Number,
			String: func(r salary.SummaryRow) string { return "" },
			Number: func(r salary.SummaryRow) float64 { return r.TotalSalary.InexactFloat64() },
		},
	},
	DefaultSort: "employeeName",
}

// SummaryRange returns one page of employee salary summaries for the range.
func (s *Service) SummaryRange(ctx context.Context, req salary.SummaryRangeRequest) (salary.SummaryPageResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SummaryPageResponse{}, err
	}
	start, end, _ := parseRange(req.StartDate, req.EndDate)

	rows, err := s.repo.SummaryRange(ctx, start, end)
	if err != nil {
		return salary.SummaryPageResponse{}, err
	}

	page, err := summaryTable.Run(rows, req.SummaryQuery())
	if err != nil {
		return salary.SummaryPageResponse{}, err
	}

	resp := salary.SummaryPageResponse{
		Rows:       make([]salary.SummaryRowResponse, 0, len(page.Items)),
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Page:       page.Number,
		PageSize:   page.PageSize,
	}
	for _, row := range page.Items {
		resp.Rows = append(resp.Rows, mapToSummaryResponse(row))
	}
	return resp, nil
}

// DailyBreakdown returns the per-day salary rows for one employee.
func (s *Service) DailyBreakdown(ctx context.Context, req salary.DailyBreakdownRequest) ([]salary.DailyRowResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start, end, _ := parseRange(req.StartDate, req.EndDate)

	rows, err := s.repo.DailyBreakdown(ctx, req.EmployeeID, start, end)
	if err != nil {
		return nil, err
	}

	resp := make([]salary.DailyRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, salary.DailyRowResponse{
			Date:                   row.Date.Format("2006-01-02"),
			DailyBaseSalary:        row.DailyBaseSalary,
			TravelAllowance:        row.TravelAllowance,
			DailyDearnessAllowance: row.DailyDearnessAllowance,
			ApprovedExpenses:       row.ApprovedExpenses,
			TotalDailySalary:       row.TotalDailySalary,
		})
	}
	return resp, nil
}

// Reconciliation fetches the range summary and the daily breakdown for one
// employee concurrently and compares them.
func (s *Service) Reconciliation(ctx context.Context, req salary.DailyBreakdownRequest) (salary.ReconciliationResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.ReconciliationResponse{}, err
	}
	start, end, _ := parseRange(req.StartDate, req.EndDate)

	var summaries []salary.SummaryRow
	var dailies []salary.DailyRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summaries, err = s.repo.SummaryRange(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		dailies, err = s.repo.DailyBreakdown(gctx, req.EmployeeID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return salary.ReconciliationResponse{}, err
	}

	var summary *salary.SummaryRow
	for i := range summaries {
		if summaries[i].EmployeeID == req.EmployeeID {
			summary = &summaries[i]
			break
		}
	}
	if summary == nil {
		return salary.ReconciliationResponse{}, salary.ErrSummaryNotFound
	}

	rec := salary.Reconcile(*summary, dailies)
	if !rec.Clean {
		slog.Warn("Salary summary disagrees with daily breakdown",
			"employee_id", req.EmployeeID,
			"total_delta", rec.TotalSalaryDelta,
		)
	}

	return salary.ReconciliationResponse{
		EmployeeID:             req.EmployeeID,
		BaseSalaryDelta:        rec.BaseSalaryDelta,
		TravelAllowanceDelta:   rec.TravelAllowanceDelta,
		DearnessAllowanceDelta: rec.DearnessAllowanceDelta,
		ApprovedExpensesDelta:  rec.ApprovedExpensesDelta,
		TotalSalaryDelta:       rec.TotalSalaryDelta,
		Clean:                  rec.Clean,
	}, nil
}

func mapToSummaryResponse(row salary.SummaryRow) salary.SummaryRowResponse {
	return salary.SummaryRowResponse{
		EmployeeID:        row.EmployeeID,
		EmployeeName:      row.EmployeeName,
		PresentDays:       row.PresentDays,
		FullDays:          row.FullDays,
		HalfDays:          row.HalfDays,
		AbsentDays:        row.AbsentDays,
		BaseSalary:        row.BaseSalary,
		TravelAllowance:   row.TravelAllowance,
		DearnessAllowance: row.DearnessAllowance,
		ApprovedExpenses:  row.ApprovedExpenses,
		TotalSalary:       row.TotalSalary,
	}
}

// parseRange assumes the request already validated both dates.
func parseRange(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}
