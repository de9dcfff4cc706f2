package alarm

import "time"

// Alarm matches a single hour:minute of the day, with a one-shot latch so it
// only fires once during the 60 seconds of the matching minute. There is no
// date component; the same alarm fires again the next day.
type Alarm struct {
	Hour   int
	Minute int

	triggered bool
}

// Observe evaluates the alarm against t and reports whether it should ring
// right now. The latch clears on the first call where the minute no longer
// matches, regardless of anything else, so a clock started inside the alarm
// minute still rings immediately.
func (a *Alarm) Observe(t time.Time) bool {
	ring := false
	if t.Hour() == a.Hour && t.Minute() == a.Minute && !a.triggered {
		a.triggered = true
		ring = true
	}
	if t.Minute() != a.Minute {
		a.triggered = false
	}
	return ring
}
