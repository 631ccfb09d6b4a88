package report

import "errors"

var (
	ErrUnknownColumn   = errors.New("unknown report column")
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("page size must be at least 1")
)
