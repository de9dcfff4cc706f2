package ntp

import (
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	packetSize  = 48
	recvTimeout = time.Second
)

// LI, version, mode. the server fills in the rest.
var request = [packetSize]byte{0xe3}

var errNotStarted = errors.New("ntp: Begin has not succeeded")

// recvTime polls conn for the server's response, up to recvTimeout. A reply
// that never arrives is an error, not a hang.
func recvTime(conn io.Reader) (time.Time, error) {
	response := make([]byte, packetSize)
	for start := time.Now(); time.Since(start) < recvTimeout; {
		time.Sleep(5 * time.Millisecond)
		n, err := conn.Read(response)
		if err != nil && err != io.EOF {
			return time.Time{}, err
		}
		if n == 0 {
			continue // no packet received yet
		}
		if n != packetSize {
			return time.Time{}, fmt.Errorf("expected NTP packet size of %d: %d", packetSize, n)
		}
		return parseTime(response), nil
	}
	return time.Time{}, errors.New("no NTP response after 1 second")
}

// parseTime extracts the transmit timestamp from an NTP response.
//
// the timestamp starts at byte 40 of the received packet and is four bytes,
// this is NTP time (seconds since Jan 1 1900):
func parseTime(r []byte) time.Time {
	t := uint32(r[40])<<24 | uint32(r[41])<<16 | uint32(r[42])<<8 | uint32(r[43])
	const seventyYears = 2208988800
	return time.Unix(int64(t-seventyYears), 0)
}
