package timesheet

import "time"

// WeekBounds normalizes any date to the Monday..Sunday pair of its ISO
// week, at midnight UTC.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	// ISO week starts Monday; Sunday counts as day 7.
	offset := int(day.Weekday())
	if offset == 0 {
		offset = 7
	}

	start := day.AddDate(0, 0, -offset+1)

	return start, start.AddDate(0, 0, 6)
}
