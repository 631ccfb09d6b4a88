package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month key validation, e.g. "Mar-24"
func IsValidMonthKey(monthStr string) (time.Time, bool) {
	month, err := time.Parse("Jan-06", monthStr)
	return month, err == nil
}

// IsValidDateRange checks both bounds parse and start does not follow end.
func IsValidDateRange(startStr, endStr string) (time.Time, time.Time, bool) {
	start, ok := IsValidDate(startStr)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := IsValidDate(endStr)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Coordinate validation: latitude in [-90, 90], longitude in [-180, 180].
func IsValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
