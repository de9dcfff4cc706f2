// Package face formats time and date for a fixed-width character display.
package face

import (
	"fmt"
	"time"
)

// Time renders t as HH:MM:SS, always 8 characters. With blink set, the colons
// are blanked on odd seconds so they appear to flash once per second.
func Time(t time.Time, blink bool) string {
	sep := byte(':')
	if blink && t.Second()%2 == 1 {
		sep = ' '
	}
	return fmt.Sprintf("%02d%c%02d%c%02d", t.Hour(), sep, t.Minute(), sep, t.Second())
}

// Date renders t as DD/MM/YYYY, always 10 characters.
func Date(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}
