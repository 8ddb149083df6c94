package services

import (
	"time"

	"ClinicBook/util"
)

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns midnight UTC of that day.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, util.BadRequest(util.INVALID_DATE)
	}
	return StartOfDay(t), nil
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
