package approval

import "context"

// Repository manages approval requests via the backend API.
type Repository interface {
	GetByStatus(ctx context.Context, status Status) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status Status, attendance AttendanceType) error
}
