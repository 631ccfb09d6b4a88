package upstream

import (
	"context"
	"net/url"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/approval"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
)

type ApprovalRepository struct {
	client *upstream.Client
}

func NewApprovalRepository(client *upstream.Client) *ApprovalRepository {
	return &ApprovalRepository{client: client}
}

type approvalRequestDTO struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employeeId"`
	EmployeeName    string  `json:"employeeName"`
	RequestDate     string  `json:"requestDate"`
	LogDate         string  `json:"logDate"`
	RequestedStatus string  `json:"requestedStatus"`
	Status          string  `json:"status"`
	ActionDate      *string `json:"actionDate"`
}

func (r *ApprovalRepository) GetByStatus(ctx context.Context, status approval.Status) ([]approval.Request, error) {
	query := url.Values{}
	query.Set("status", string(status))

	var rows []approvalRequestDTO
	if err := r.client.GetJSON(ctx, "/request/getByStatus", query, &rows); err != nil {
		return nil, err
	}

	result := make([]approval.Request, 0, len(rows))
	for _, row := range rows {
		requestDate, err := time.Parse(dateLayout, row.RequestDate)
		if err != nil {
			return nil, err
		}
		logDate, err := time.Parse(dateLayout, row.LogDate)
		if err != nil {
			return nil, err
		}

		request := approval.Request{
			ID:              row.ID,
			EmployeeID:      row.EmployeeID,
			EmployeeName:    row.EmployeeName,
			RequestDate:     requestDate,
			LogDate:         logDate,
			RequestedStatus: approval.AttendanceType(row.RequestedStatus),
			Status:          approval.Status(row.Status),
		}
		if row.ActionDate != nil {
			actionDate, err := time.Parse(dateLayout, *row.ActionDate)
			if err != nil {
				return nil, err
			}
			request.ActionDate = &actionDate
		}
		result = append(result, request)
	}
	return result, nil
}

func (r *ApprovalRepository) UpdateStatus(ctx context.Context, id string, status approval.Status, attendance approval.AttendanceType) error {
	query := url.Values{}
	query.Set("id", id)
	query.Set("status", string(status))
	query.Set("attendance", string(attendance))

	return r.client.PutJSON(ctx, "/request/updateStatus", query, nil, nil)
}
