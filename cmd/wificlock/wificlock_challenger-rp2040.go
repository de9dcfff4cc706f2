//go:build challenger_rp2040

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/hd44780i2c"
	"tinygo.org/x/drivers/tone"

	"github.com/ajlim/wificlock/internal/alarm"
	"github.com/ajlim/wificlock/internal/buzzer"
	"github.com/ajlim/wificlock/internal/clock"
	"github.com/ajlim/wificlock/internal/ntp"
)

const buzzerPin = machine.GPIO15

// GPIO15 is on PWM slice 7.
var buzzerPWM = machine.PWM7

func main() {
	time.Sleep(time.Second)
	blink()
	err := machine.I2C0.Configure(machine.I2CConfig{
		SCL:       machine.I2C0_SCL_PIN,
		SDA:       machine.I2C0_SDA_PIN,
		Frequency: 100 * machine.KHz,
	})
	if err != nil {
		earlyPanic(err)
	}
	blink()

	lcd := hd44780i2c.New(machine.I2C0, lcdAddr)
	err = lcd.Configure(hd44780i2c.Config{Width: lcdCols, Height: lcdRows})
	if err != nil {
		earlyPanic(err)
	}
	lcd.BacklightOn(true)
	blink()

	buzzerPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	buzzerPin.Low() // idle low until the alarm fires
	sp, err := tone.New(buzzerPWM, buzzerPin)
	if err != nil {
		earlyPanic(err)
	}

	lcd.ClearDisplay()
	lcd.Print([]byte("Connecting WiFi"))
	lcd.SetCursor(0, 1)
	ntp.Join(wifiSSID, wifiPassword, lcdStatus{&lcd})

	lcd.ClearDisplay()
	lcd.Print([]byte("Setting time"))
	src := ntp.NewClient(ntpHost, tzOffset, ntpResync)
	if err := src.Begin(); err != nil {
		earlyPanic(err)
	}

	c := clock.New(src, &lcd,
		buzzer.New(speaker{sp}, buzzer.PatternBeeps),
		alarm.Alarm{Hour: alarmHour, Minute: alarmMinute},
		clock.Options{BlinkColon: true, Cols: lcdCols})
	lcd.ClearDisplay()
	c.Run()
}
