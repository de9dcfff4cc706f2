// Package buzzer plays the alarm sound on a square-wave output.
package buzzer

import "time"

// Output is the start/stop surface of a square-wave source, e.g. a
// tone.Speaker on a PWM pin.
type Output interface {
	Start()
	Stop()
}

type Pattern uint8

const (
	// PatternTone holds a single continuous note for the whole ring.
	PatternTone Pattern = iota
	// PatternBeeps plays a fixed train of on/off pulses.
	PatternBeeps
)

const (
	toneDuration = 5 * time.Second
	beepCount    = 10
	beepOn       = 300 * time.Millisecond
	beepOff      = 200 * time.Millisecond
)

type Buzzer struct {
	out     Output
	pattern Pattern
	sleep   func(time.Duration)
}

func New(out Output, pattern Pattern) *Buzzer {
	return &Buzzer{
		out:     out,
		pattern: pattern,
		sleep:   time.Sleep,
	}
}

// Ring plays the configured pattern. It blocks for the duration of the
// pattern and always leaves the output stopped.
func (b *Buzzer) Ring() {
	switch b.pattern {
	case PatternBeeps:
		for i := 0; i < beepCount; i++ {
			b.out.Start()
			b.sleep(beepOn)
			b.out.Stop()
			b.sleep(beepOff)
		}
	default:
		b.out.Start()
		b.sleep(toneDuration)
		b.out.Stop()
	}
}
