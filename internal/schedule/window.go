package schedule

import "regexp"

// The venue reserves 16:30-18:00 exclusively for lightning talks; every
// session time and talk start time must fall inside that window.
const (
	WindowStart = "16:30"
	WindowEnd   = "18:00"
)

var timeOfDay = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func ValidTimeOfDay(t string) bool {
	return timeOfDay.MatchString(t)
}

// WithinWindow reports whether t is a well-formed HH:MM inside the talk
// window, bounds inclusive. Lexicographic comparison on zero-padded HH:MM
// matches chronological order within a day.
func WithinWindow(t string) bool {
	return ValidTimeOfDay(t) && WindowStart <= t && t <= WindowEnd
}

// ValidRange reports whether both times sit in the window and start is
// strictly before end.
func ValidRange(start, end string) bool {
	return WithinWindow(start) && WithinWindow(end) && start < end
}
