package vacation

import "time"

// CountBusinessDays returns the number of weekdays (Monday through Friday)
// in the inclusive range [start, end]. Time-of-day components are stripped
// before the weekday walk, so a range within a single weekday counts as 1.
func CountBusinessDays(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, ErrInvalidRange
	}

	count := 0
	day := truncateToDate(start)
	last := truncateToDate(end)
	for !day.After(last) {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
