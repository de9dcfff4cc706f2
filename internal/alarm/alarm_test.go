package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(day, hour, min, sec int) time.Time {
	return time.Date(2025, time.July, day, hour, min, sec, 0, time.UTC)
}

func TestObserveFiresOncePerMatchingMinute(t *testing.T) {
	t.Parallel()

	a := Alarm{Hour: 8, Minute: 0}

	require.False(t, a.Observe(at(3, 7, 59, 59)))
	require.True(t, a.Observe(at(3, 8, 0, 0)))
	require.False(t, a.Observe(at(3, 8, 0, 1)))
	require.False(t, a.Observe(at(3, 8, 0, 30)))
	require.False(t, a.Observe(at(3, 8, 0, 59)))
}

func TestObserveResetsWhenMinuteMovesOn(t *testing.T) {
	t.Parallel()

	a := Alarm{Hour: 8, Minute: 0}

	require.True(t, a.Observe(at(3, 8, 0, 0)))
	require.False(t, a.Observe(at(3, 8, 1, 0)))
	// same day, same minute again would fire, but normally it's tomorrow
	require.True(t, a.Observe(at(4, 8, 0, 0)))
}

func TestObserveResetIsIdempotent(t *testing.T) {
	t.Parallel()

	a := Alarm{Hour: 8, Minute: 0}

	require.False(t, a.Observe(at(3, 9, 30, 0)))
	require.False(t, a.triggered)
	require.False(t, a.Observe(at(3, 9, 30, 1)))
	require.False(t, a.triggered)
}

func TestObserveStartedInsideAlarmMinute(t *testing.T) {
	t.Parallel()

	a := Alarm{Hour: 8, Minute: 0}

	require.True(t, a.Observe(at(3, 8, 0, 42)))
}

func TestObserveHourMismatchLeavesLatchAlone(t *testing.T) {
	t.Parallel()

	a := Alarm{Hour: 8, Minute: 0}

	require.True(t, a.Observe(at(3, 8, 0, 0)))
	// minute matches but hour doesn't: no fire, and the latch only clears
	// once the minute itself differs
	require.False(t, a.Observe(at(3, 9, 0, 0)))
	require.True(t, a.triggered)
	require.False(t, a.Observe(at(3, 9, 1, 0)))
	require.False(t, a.triggered)
}
