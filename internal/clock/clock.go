// Package clock is the main loop: fetch the time, draw it, ring the alarm.
package clock

import (
	"time"

	"github.com/ajlim/wificlock/internal/alarm"
	"github.com/ajlim/wificlock/internal/face"
)

// TimeSource hands out the current wall-clock time. Update gives the source a
// chance to re-synchronize; a failed Update leaves the previous time running.
type TimeSource interface {
	Update() error
	Now() time.Time
}

// Screen is the subset of an hd44780i2c.Device the loop draws through.
type Screen interface {
	ClearDisplay()
	SetCursor(col, row uint8)
	Print(data []byte)
}

// Sounder plays the alarm sound. Ring blocks until the sound is done.
type Sounder interface {
	Ring()
}

type Options struct {
	// BlinkColon blanks the time separators on odd seconds.
	BlinkColon bool
	// Cols is the display width in characters. Defaults to 16.
	Cols uint8
	// TickEvery is the delay between loop iterations. Defaults to 1s.
	TickEvery time.Duration
}

type Clock struct {
	src   TimeSource
	scr   Screen
	snd   Sounder
	alarm alarm.Alarm
	opts  Options
}

const ringingMsg = "** WAKE UP!! **"

func New(src TimeSource, scr Screen, snd Sounder, al alarm.Alarm, opts Options) *Clock {
	if opts.Cols == 0 {
		opts.Cols = 16
	}
	if opts.TickEvery == 0 {
		opts.TickEvery = time.Second
	}
	return &Clock{
		src:   src,
		scr:   scr,
		snd:   snd,
		alarm: al,
		opts:  opts,
	}
}

// Tick runs one iteration: refresh the time, redraw both rows, and ring the
// alarm if its minute just arrived. When ringing, the date row shows the
// ringing message until the next tick redraws it.
func (c *Clock) Tick() {
	_ = c.src.Update() // stale time is better than no time
	now := c.src.Now()

	c.write(0, face.Time(now, c.opts.BlinkColon))
	c.write(1, face.Date(now))

	if c.alarm.Observe(now) {
		c.write(1, ringingMsg)
		c.snd.Ring()
	}
}

// Run ticks forever at the configured interval. It never returns.
func (c *Clock) Run() {
	for {
		c.Tick()
		time.Sleep(c.opts.TickEvery)
	}
}

// write draws s at the start of a row, padded with spaces to the full width
// so leftovers from longer writes are cleared.
func (c *Clock) write(row uint8, s string) {
	b := make([]byte, c.opts.Cols)
	copy(b, s)
	for i := len(s); i < len(b); i++ {
		b[i] = ' '
	}
	c.scr.SetCursor(0, row)
	c.scr.Print(b)
}
