package utils

import (
	"math"
	"time"
)

// Nights counts the billable nights in the half-open stay [start, end).
// Partial days round up, so a 2030-01-01 to 2030-01-03 stay is 2 nights.
func Nights(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// TotalCharge is nights * nightly price, the same figure the booking
// ticket shows.
func TotalCharge(start, end time.Time, pricePerNight float64) float64 {
	return float64(Nights(start, end)) * pricePerNight
}
