package approval

import (
	"context"
	"testing"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/approval"
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusUpdate struct {
	id         string
	status     approval.Status
	attendance approval.AttendanceType
}

type fakeApprovalRepository struct {
	byStatus map[approval.Status][]approval.Request
	updates  []statusUpdate
}

func (f *fakeApprovalRepository) GetByStatus(ctx context.Context, status approval.Status) ([]approval.Request, error) {
	return f.byStatus[status], nil
}

func (f *fakeApprovalRepository) UpdateStatus(ctx context.Context, id string, status approval.Status, attendance approval.AttendanceType) error {
	f.updates = append(f.updates, statusUpdate{id: id, status: status, attendance: attendance})
	return nil
}

func pendingRequest(id, name string, requested approval.AttendanceType) approval.Request {
	date, _ := time.Parse("2006-01-02", "2024-03-05")
	return approval.Request{
		ID:              id,
		EmployeeID:      "emp-" + id,
		EmployeeName:    name,
		RequestDate:     date,
		LogDate:         date.AddDate(0, 0, -1),
		RequestedStatus: requested,
		Status:          approval.StatusPending,
	}
}

func TestListDefaultsToPendingSortedByName(t *testing.T) {
	repo := &fakeApprovalRepository{byStatus: map[approval.Status][]approval.Request{
		approval.StatusPending: {
			pendingRequest("2", "Rohan Verma", approval.AttendanceFullDay),
			pendingRequest("1", "anita desai", approval.AttendanceHalfDay),
		},
	}}
	service := NewService(repo)

	result, err := service.List(context.Background(), approval.ListRequest{})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "anita desai", result[0].EmployeeName)
	assert.Equal(t, "Rohan Verma", result[1].EmployeeName)
}

func TestListSearchFiltersByEmployeeName(t *testing.T) {
	repo := &fakeApprovalRepository{byStatus: map[approval.Status][]approval.Request{
		approval.StatusPending: {
			pendingRequest("1", "Anita Desai", approval.AttendanceFullDay),
			pendingRequest("2", "Rohan Verma", approval.AttendanceFullDay),
		},
	}}
	service := NewService(repo)

	result, err := service.List(context.Background(), approval.ListRequest{Search: "rohan"})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Rohan Verma", result[0].EmployeeName)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	service := NewService(&fakeApprovalRepository{})

	_, err := service.List(context.Background(), approval.ListRequest{Status: "archived"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestDecideApprovesWithExplicitAttendance(t *testing.T) {
	repo := &fakeApprovalRepository{byStatus: map[approval.Status][]approval.Request{
		approval.StatusPending: {pendingRequest("1", "Anita Desai", approval.AttendanceFullDay)},
	}}
	service := NewService(repo)

	result, err := service.Decide(context.Background(), approval.DecisionRequest{
		ID:             "1",
		Action:         "approved",
		AttendanceType: "half day",
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", result.Status)
	assert.Equal(t, "half day", result.AttendanceType)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, approval.StatusApproved, repo.updates[0].status)
	assert.Equal(t, approval.AttendanceHalfDay, repo.updates[0].attendance)
}

func TestDecideDefaultsAttendanceToRequestedStatus(t *testing.T) {
	repo := &fakeApprovalRepository{byStatus: map[approval.Status][]approval.Request{
		approval.StatusPending: {pendingRequest("1", "Anita Desai", approval.AttendanceFullDay)},
	}}
	service := NewService(repo)

	result, err := service.Decide(context.Background(), approval.DecisionRequest{
		ID:     "1",
		Action: "rejected",
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", result.Status)
	assert.Equal(t, "full day", result.AttendanceType)
}

func TestDecideUnknownRequest(t *testing.T) {
	repo := &fakeApprovalRepository{byStatus: map[approval.Status][]approval.Request{}}
	service := NewService(repo)

	_, err := service.Decide(context.Background(), approval.DecisionRequest{
		ID:     "missing",
		Action: "approved",
	})

	assert.ErrorIs(t, err, approval.ErrRequestNotFound)
	assert.Empty(t, repo.updates)
}

func TestDecideRejectsInvalidAction(t *testing.T) {
	service := NewService(&fakeApprovalRepository{})

	_, err := service.Decide(context.Background(), approval.DecisionRequest{
		ID:     "1",
		Action: "escalated",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestDecideTerminalStatus(t *testing.T) {
	next, err := approval.Decide(approval.StatusApproved, approval.ActionReject)

	assert.ErrorIs(t, err, approval.ErrAlreadyDecided)
	assert.Equal(t, approval.StatusApproved, next)
}
