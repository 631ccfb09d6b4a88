package employee

import "context"

// Repository reads the employee directory from the backend API. Active and
// inactive sets come from separate endpoints.
type Repository interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetAllInactive(ctx context.Context) ([]Employee, error)
}
