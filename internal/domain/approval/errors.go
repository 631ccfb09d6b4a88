package approval

import "errors"

var (
	ErrRequestNotFound       = errors.New("approval request not found")
	ErrAlreadyDecided        = errors.New("approval request already decided")
	ErrInvalidAction         = errors.New("invalid approval action")
	ErrInvalidAttendanceType = errors.New("invalid attendance type")
	ErrInvalidStatus         = errors.New("invalid approval status")
)
