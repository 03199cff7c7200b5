package schedule

import "time"

const dateLayout = "2006-01-02"

// IsLive reports whether a talk scheduled on date (YYYY-MM-DD) at startTime
// (HH:MM) for duration minutes is running at now. Both boundary instants
// count as live. Dates and times are naive local wall-clock, matching how
// they are stored; now's location is used without conversion.
func IsLive(now time.Time, date string, startTime *string, duration int) bool {
	if date == "" || startTime == nil || *startTime == "" {
		return false
	}
	if now.Format(dateLayout) != date {
		return false
	}
	t, err := time.Parse("15:04", *startTime)
	if err != nil {
		return false
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	end := start.Add(time.Duration(duration) * time.Minute)
	return !now.Before(start) && !now.After(end)
}

// ValidDate reports whether d is a well-formed YYYY-MM-DD calendar date.
func ValidDate(d string) bool {
	_, err := time.Parse(dateLayout, d)
	return err == nil && len(d) == len(dateLayout)
}

// Today formats now as the date-only string used for session filtering.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}
