package visit

import (
	"context"
	"time"
)

// Repository reads visit data via the backend API.
type Repository interface {
	OfficerStats(ctx context.Context, employeeID string, start, end time.Time) (OfficerStats, error)
	CustomerDetails(ctx context.Context, employeeID string, start, end time.Time, customerType string) ([]Detail, error)
}
