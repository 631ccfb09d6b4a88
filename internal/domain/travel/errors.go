package travel

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid travel date range")
	ErrEmployeeRequired = errors.New("employee id is required")
	ErrNoAnomalousDays  = errors.New("no anomalous days to back-fill")
)
