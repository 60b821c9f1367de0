package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses an optional YYYY-MM-DD value as UTC midnight.
func ParseDate(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}
