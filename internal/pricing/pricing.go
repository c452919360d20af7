// Package pricing computes the derived rental price for a booking period.
package pricing

import "time"

const week = 7 * 24 * time.Hour

// WholeWeeks returns the number of whole calendar weeks between start and
// returnDate, truncating toward zero. A range shorter than seven days is
// zero weeks; the sign follows the direction of the range.
func WholeWeeks(start, returnDate time.Time) int {
	return int(returnDate.Sub(start) / week)
}

// RentalPrice is whole weeks times the book's per-week rate. Callers are
// expected to have rejected inverted ranges beforehand.
func RentalPrice(start, returnDate time.Time, ratePerWeek float64) float64 {
	return float64(WholeWeeks(start, returnDate)) * ratePerWeek
}
