package utils

import (
	"strconv"
)

// ParseFloat converts a string to a float64, returning 0 on empty or
// unparsable input. Rule and policy payloads carry numbers as strings in
// several places, and a bad number must degrade, not fail.
func ParseFloat(s string) float64 {
	if s == "" {
		return 0
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return value
}
