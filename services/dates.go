package services

import (
	"strings"
	"time"

	"estay-backend/models"
)

// ParseStayRange builds a validated DateRange from the request strings.
// Accepts plain dates ("2026-02-20") and RFC3339 timestamps; anything else,
// or an inverted range, is ErrInvalidRange.
func ParseStayRange(checkIn, checkOut string) (models.DateRange, error) {
	ci, ok := parseDay(checkIn)
	if !ok {
		return models.DateRange{}, models.ErrInvalidRange
	}
	co, ok := parseDay(checkOut)
	if !ok {
		return models.DateRange{}, models.ErrInvalidRange
	}
	return models.NewDateRange(ci, co)
}

func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
