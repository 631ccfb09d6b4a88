package approval

import (
	"context"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/approval"
	"github.com/gajkesari/backoffice-go/internal/domain/report"
)

type Service struct {
	repo approval.Repository
}

func NewService(repo approval.Repository) *Service {
	return &Service{repo: repo}
}

var requestTable = report.Table[approval.Request]{
	Columns: map[string]report.Column[approval.Request]{
		"employeeName": {
			Kind:   report.Text,
			String: func(r approval.Request) string { return r.EmployeeName },
		},
		"requestDate": {
			Kind:   report.Date,
			String: func(r approval.Request) string { return r.RequestDate.Format("2006-01-02") },
			Date:   func(r approval.Request) time.Time { return r.RequestDate },
		},
		"logDate": {
			Kind:   report.Date,
			String: func(r approval.Request) string { return r.LogDate.Format("2006-01-02") },
			Date:   func(r approval.Request) time.Time { return r.LogDate },
		},
	},
	DefaultSort: "employeeName",
}

// List returns approval requests in one status, optionally filtered by
// employee name. Defaults to the pending queue.
func (s *Service) List(ctx context.Context, req approval.ListRequest) ([]approval.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := approval.Status(req.Status)
	if status == "" {
		status = approval.StatusPending
	}

	requests, err := s.repo.GetByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	filters := map[string]string{}
	if req.Search != "" {
		filters["employeeName"] = req.Search
	}
	page, err := requestTable.Run(requests, report.Query{
		Filters:  filters,
		SortBy:   req.SortBy,
		Page:     1,
		PageSize: max(len(requests), 1),
	})
	if err != nil {
		return nil, err
	}

	resp := make([]approval.RequestResponse, 0, len(page.Items))
	for _, request := range page.Items {
		resp = append(resp, mapToRequestResponse(request))
	}
	return resp, nil
}

// Decide transitions one pending request. When the decision carries no
// attendance type, the employee's originally requested status is applied.
// The upstream call is the source of truth; nothing is updated locally on
// failure.
func (s *Service) Decide(ctx context.Context, req approval.DecisionRequest) (approval.DecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.DecisionResponse{}, err
	}

	pending, err := s.repo.GetByStatus(ctx, approval.StatusPending)
	if err != nil {
		return approval.DecisionResponse{}, err
	}

	var request *approval.Request
	for i := range pending {
		if pending[i].ID == req.ID {
			request = &pending[i]
			break
		}
	}
	if request == nil {
		return approval.DecisionResponse{}, approval.ErrRequestNotFound
	}

	next, err := approval.Decide(request.Status, approval.Action(req.Action))
	if err != nil {
		return approval.DecisionResponse{}, err
	}

	attendance := approval.ResolveAttendanceType(
		approval.AttendanceType(req.AttendanceType),
		request.RequestedStatus,
	)

	if err := s.repo.UpdateStatus(ctx, req.ID, next, attendance); err != nil {
		return approval.DecisionResponse{}, err
	}

	return approval.DecisionResponse{
		ID:             req.ID,
		Status:         string(next),
		AttendanceType: string(attendance),
	}, nil
}

func mapToRequestResponse(request approval.Request) approval.RequestResponse {
	resp := approval.RequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		EmployeeName:    request.EmployeeName,
		RequestDate:     request.RequestDate.Format("2006-01-02"),
		LogDate:         request.LogDate.Format("2006-01-02"),
		RequestedStatus: string(request.RequestedStatus),
		Status:          string(request.Status),
	}
	if request.ActionDate != nil {
		resp.ActionDate = request.ActionDate.Format("2006-01-02")
	}
	return resp
}
