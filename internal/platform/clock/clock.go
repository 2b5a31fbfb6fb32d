package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

const dayLayout = "2006-01-02"

// DayOf formats t as the calendar-day key used throughout goal history.
func DayOf(t time.Time) string {
	return t.Format(dayLayout)
}

// ParseDay parses a calendar-day key produced by DayOf.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(dayLayout, day)
}
