package utils

import (
	"fmt"
	"math"
	"time"
)

// dateLayout is the wire format for calendar dates throughout the API.
const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time at
// midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// FormatDate renders a time.Time as a yyyy-mm-dd string.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// RentalDays returns the number of chargeable days between two calendar
// dates, inclusive of both ends: a same-day rental is one day, and each
// additional calendar day adds one. Returns an error if end precedes start.
func RentalDays(start, end time.Time) (int64, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end date must not be before start date")
	}
	days := int64(math.Ceil(end.Sub(start).Hours()/24)) + 1
	return days, nil
}

// CalculateRentalCost computes the total rental charge for the inclusive
// date range at the given daily rate. Pure and deterministic: the server
// charge and any client preview computed from the same inputs always agree.
func CalculateRentalCost(start, end time.Time, pricePerDayCents int64) (int64, error) {
	days, err := RentalDays(start, end)
	if err != nil {
		return 0, err
	}
	return days * pricePerDayCents, nil
}
