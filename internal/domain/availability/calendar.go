package availability

import "time"

// DaysInMonth returns the day keys of a month in order, 1 through the
// month's length.
func DaysInMonth(year int, month time.Month) []DayKey {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	out := make([]DayKey, 0, last.Day())
	for day := 1; day <= last.Day(); day++ {
		out = append(out, DayKey{Year: year, Month: month, Day: day})
	}
	return out
}

// FirstWeekdayOffset returns how many leading blank cells a month grid needs
// before day 1. Sunday is 0, matching time.Weekday.
func FirstWeekdayOffset(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return int(first.Weekday())
}
