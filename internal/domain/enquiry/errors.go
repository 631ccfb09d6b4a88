package enquiry

import "errors"

var (
	ErrInvalidMonthRange = errors.New("invalid enquiry month range")
	ErrEmptyUpload       = errors.New("upload file is empty")
)
