//go:build tinygo

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/hd44780i2c"
	"tinygo.org/x/drivers/tone"
)

// alarm time of day, 24-hour clock
const (
	alarmHour   = 8
	alarmMinute = 0
)

const (
	ntpHost   = "0.pool.ntp.org:123"
	ntpResync = time.Hour

	lcdAddr = 0x27
	lcdCols = 16
	lcdRows = 2
)

var (
	// TODO better way to set these. for now, create a config.go and set them in an init()
	wifiSSID     string
	wifiPassword string
	tzOffset     time.Duration
)

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

func earlyPanic(err error) {
	for i := 0; ; i++ {
		blink()
		if i%5 == 0 {
			println(err)
		}
	}
}

// lcdStatus lets the join progress dots land on the LCD at the current
// cursor position.
type lcdStatus struct {
	lcd *hd44780i2c.Device
}

func (s lcdStatus) Print(msg string) {
	s.lcd.Print([]byte(msg))
}

// speaker adapts a tone.Speaker to the buzzer's start/stop surface.
type speaker struct {
	tone.Speaker
}

func (s speaker) Start() {
	s.SetNote(tone.A5)
}
