package utils

import "time"

// IsWeekday reports whether t falls on Monday through Friday.
// Holidays are not modelled.
func IsWeekday(t time.Time) bool {
	day := t.Weekday()
	return day != time.Saturday && day != time.Sunday
}

// TruncateToDate drops the clock part, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Weekdays returns every weekday between start and end, both inclusive.
func Weekdays(start, end time.Time) []time.Time {
	start = TruncateToDate(start)
	end = TruncateToDate(end)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) {
			days = append(days, d)
		}
	}
	return days
}

// CountWeekdays is len(Weekdays(start, end)) without the allocation.
func CountWeekdays(start, end time.Time) int {
	start = TruncateToDate(start)
	end = TruncateToDate(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) {
			count++
		}
	}
	return count
}
