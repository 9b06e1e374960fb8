package models

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a stay range is malformed (check-out not
// after check-in). Raised at construction time so every DateRange in the
// system is valid by the time anything compares it.
var ErrInvalidRange = errors.New("invalid date range: check-out must be after check-in")

// DateRange is a half-open stay interval [CheckIn, CheckOut).
// Checkout day and the next guest's check-in day may coincide.
type DateRange struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// NewDateRange validates and builds a DateRange. Times are truncated to the
// calendar day; bookings are per-night, not per-hour.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	ci := toDay(checkIn)
	co := toDay(checkOut)
	if !ci.Before(co) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{CheckIn: ci, CheckOut: co}, nil
}

// Overlaps reports whether two half-open intervals intersect.
// Back-to-back stays (a.CheckOut == b.CheckIn) do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Nights is the number of nights the stay spans.
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
