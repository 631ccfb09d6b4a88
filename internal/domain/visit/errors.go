package visit

import "errors"

var (
	ErrInvalidDateRange    = errors.New("invalid visit date range")
	ErrEmployeeRequired    = errors.New("employee id is required")
	ErrUnknownCustomerType = errors.New("unknown customer type")
	ErrUnknownPreset       = errors.New("unknown date range preset")
)
