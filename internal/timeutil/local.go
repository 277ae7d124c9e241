package timeutil

import (
	"time"
)

// Local is the business timezone all calendar math runs in. Sale dates are
// plain "YYYY-MM-DD" strings with no timezone of their own, so day/week/month
// windows are anchored here.
var Local *time.Location

func init() {
	var err error
	Local, err = time.LoadLocation("America/Cancun")
	if err != nil {
		// Fallback: fixed zone if the tzdata entry is not available
		Local = time.FixedZone("EST", -5*60*60) // UTC-5, no DST
	}
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return time.Now().In(Local)
}

// ParseDate parses a "YYYY-MM-DD" sale date as midnight in the business
// timezone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, Local)
}

// StartOfDay returns 00:00:00 of the given time's calendar date.
func StartOfDay(t time.Time) time.Time {
	lt := t.In(Local)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Local)
}

// StartOfWeek returns 00:00:00 of the most recent Sunday (inclusive).
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	al, bl := a.In(Local), b.In(Local)
	return al.Year() == bl.Year() && al.YearDay() == bl.YearDay()
}

// SameMonth reports whether a and b fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	al, bl := a.In(Local), b.In(Local)
	return al.Year() == bl.Year() && al.Month() == bl.Month()
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
