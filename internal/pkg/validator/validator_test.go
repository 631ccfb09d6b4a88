package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"tab and newline", "\t\n", true},
		{"non-empty", "hello", false},
		{"padded", "  hello  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.input); got != tt.expected {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"digits", "12345", true},
		{"single digit", "0", true},
		{"empty", "", false},
		{"letters", "abc", false},
		{"mixed", "12a", false},
		{"negative", "-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNumeric(tt.input); got != tt.expected {
				t.Errorf("IsNumeric(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid date", "2024-03-15", true},
		{"leap day", "2024-02-29", true},
		{"invalid day", "2023-02-29", false},
		{"wrong format", "15-03-2024", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := IsValidDate(tt.input); got != tt.expected {
				t.Errorf("IsValidDate(%q) ok = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidMonthKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid month", "Mar-24", true},
		{"valid december", "Dec-23", true},
		{"lowercase", "mar-24", false},
		{"full month name", "March-24", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := IsValidMonthKey(tt.input); got != tt.expected {
				t.Errorf("IsValidMonthKey(%q) ok = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected bool
	}{
		{"valid range", "2024-03-01", "2024-03-31", true},
		{"same day", "2024-03-01", "2024-03-01", true},
		{"inverted", "2024-03-31", "2024-03-01", false},
		{"bad start", "not-a-date", "2024-03-01", false},
		{"bad end", "2024-03-01", "not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, got := IsValidDateRange(tt.start, tt.end); got != tt.expected {
				t.Errorf("IsValidDateRange(%q, %q) ok = %v, want %v", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestIsValidCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat      float64
		lon      float64
		expected bool
	}{
		{"valid", 18.52, 73.85, true},
		{"zero zero", 0, 0, true},
		{"lat too high", 91, 0, false},
		{"lon too low", 0, -181, false},
		{"boundary", 90, 180, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCoordinate(tt.lat, tt.lon); got != tt.expected {
				t.Errorf("IsValidCoordinate(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.expected)
			}
		})
	}
}
