// Package dateutil holds the calendar arithmetic used to date contribution
// schedules and withdrawal runs.
package dateutil

import "time"

// FirstOfMonth truncates a date to midnight on the first of its month.
func FirstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// AddMonths adds months to the first of the date's month. Normalising to the
// first avoids time.AddDate rolling Jan 31 + 1 month into March.
func AddMonths(date time.Time, months int) time.Time {
	return FirstOfMonth(date).AddDate(0, months, 0)
}

// EndOfMonth returns the last instant of the date's month.
func EndOfMonth(date time.Time) time.Time {
	return AddMonths(date, 1).Add(-time.Nanosecond)
}

// MonthsBetween counts whole calendar months from one date's month to another's.
// The result is negative when to precedes from.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// MonthDate returns the due date of the 1-based month index of a series
// starting at start. A zero start yields a zero time.
func MonthDate(start time.Time, monthIndex int) time.Time {
	if start.IsZero() {
		return time.Time{}
	}
	return AddMonths(start, monthIndex-1)
}
