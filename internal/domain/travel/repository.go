package travel

import (
	"context"
	"time"
)

// Repository reads and writes travel allowance data via the backend API.
type Repository interface {
	DayDetails(ctx context.Context, employeeID string, start, end time.Time) ([]DayDetail, error)
	CreateAllowance(ctx context.Context, employeeID string, date time.Time, distances DayDistances) error
}
