package round

import "time"

// Clock is the time source polled by the countdown and the round deadline.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// waitUntil polls c every poll interval until t has passed. Precision is
// bounded by the poll interval; sub-tick accuracy is not needed.
func waitUntil(c Clock, t time.Time, poll time.Duration) {
	for c.Now().Before(t) {
		c.Sleep(poll)
	}
}
