package listing

import "time"

// DaysSince returns whole days between the posting timestamp and now, measured
// on the wall clock of now's location. The result is floored, so it is
// negative when the posting is in the future.
func DaysSince(posted int64, now time.Time) int {
	p := time.Unix(posted, 0).In(now.Location())
	d := wallClock(now).Sub(wallClock(p))
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}

// wallClock drops the zone offset so DST transitions do not shift day counts.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
