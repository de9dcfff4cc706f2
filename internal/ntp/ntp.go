//go:build tinygo

// Package ntp joins Wi-Fi and keeps the system clock set from an NTP server.
package ntp

import (
	"net"
	"runtime"
	"time"

	"tinygo.org/x/drivers/netlink"
	"tinygo.org/x/drivers/netlink/probe"
)

const (
	connectTimeout = 10 * time.Second
	retryDelay     = 500 * time.Millisecond
)

// Status receives connection progress text, one fragment at a time.
type Status interface {
	Print(s string)
}

// Join connects to the given Wi-Fi network, retrying forever until
// association succeeds. Each attempt writes a progress dot to st. A network
// that never comes up means we hang here: better no clock than a wrong one.
//
// based on https://github.com/tinygo-org/drivers/blob/release/examples/net/ntpclient/main.go
func Join(ssid, password string, st Status) {
	linker, _ := probe.Probe()
	time.Sleep(1 * time.Second)

	for {
		err := linker.NetConnect(&netlink.ConnectParams{
			Ssid:           ssid,
			Passphrase:     password,
			AuthType:       netlink.AuthTypeWPA2,
			ConnectTimeout: connectTimeout,
		})
		if err == nil {
			return
		}
		println("wifi connect:", err.Error())
		st.Print(".")
		time.Sleep(retryDelay)
	}
}

// Client keeps time.Now() synchronized to an NTP server. Begin performs the
// first sync; Update re-syncs once the resync interval has elapsed. A failed
// re-sync is silent: the clock keeps running off the last good offset.
type Client struct {
	host     string
	offset   time.Duration
	interval time.Duration

	conn     net.Conn
	lastSync time.Time
}

// NewClient prepares a client for host ("name:123"). offset is the fixed
// local-time offset from UTC; interval is how often Update actually re-syncs.
func NewClient(host string, offset, interval time.Duration) *Client {
	return &Client{
		host:     host,
		offset:   offset,
		interval: interval,
	}
}

// Begin dials the server and sets the clock for the first time.
func (c *Client) Begin() error {
	conn, err := net.Dial("udp", c.host)
	if err != nil {
		return err
	}
	c.conn = conn
	return c.sync()
}

// Update re-syncs the clock if the resync interval has elapsed. Errors are
// returned for logging but the previous offset stays in effect.
func (c *Client) Update() error {
	if time.Since(c.lastSync) < c.interval {
		return nil
	}
	return c.sync()
}

// Now returns the current local time.
func (c *Client) Now() time.Time {
	return time.Now()
}

func (c *Client) sync() error {
	if c.conn == nil {
		return errNotStarted
	}
	if _, err := c.conn.Write(request[:]); err != nil {
		return err
	}

	t, err := recvTime(c.conn)
	if err != nil {
		return err
	}
	runtime.AdjustTimeOffset(-1*int64(time.Since(t)) + int64(c.offset))
	c.lastSync = time.Now()
	return nil
}
