package library

import "time"

// Clock converts wall-clock elapsed time into whole simulated days. The
// day length is configurable so overdue logic can be exercised quickly.
type Clock struct {
	dayDuration time.Duration
}

// NewClock returns a clock with the given day length.
func NewClock(dayDuration time.Duration) Clock {
	return Clock{dayDuration: dayDuration}
}

// DayLength returns the real-time span of one simulated day.
func (c Clock) DayLength() time.Duration { return c.dayDuration }

// DaysSince returns the number of whole simulated days elapsed since
// start, truncating toward zero.
func (c Clock) DaysSince(start time.Time) int {
	return int(time.Since(start) / c.dayDuration)
}
