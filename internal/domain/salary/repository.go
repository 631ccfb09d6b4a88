package salary

import (
	"context"
	"time"
)

// Repository reads salary figures from the backend API.
type Repository interface {
	SummaryRange(ctx context.Context, start, end time.Time) ([]SummaryRow, error)
	DailyBreakdown(ctx context.Context, employeeID string, start, end time.Time) ([]DailyRow, error)
}
