package models

import (
	"fmt"
	"time"
)

// ValidateDate checks that value is an ISO-8601 calendar date (YYYY-MM-DD).
// Dates are kept as strings end to end; their lexicographic order is their
// chronological order.
func ValidateDate(value, field string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return nil
}
