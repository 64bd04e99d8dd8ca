// FILE: lixenwraith/tinylog/clock.go
package tinylog

import (
	"time"
)

// Clock returns elapsed milliseconds since an epoch chosen by the embedding system.
// It is read while the logger lock is held, so stamps never decrease in sink order.
type Clock func() uint64

// monotonicClock counts milliseconds from the moment it is created
func monotonicClock() Clock {
	start := time.Now()
	return func() uint64 {
		return uint64(time.Since(start).Milliseconds())
	}
}

// SinceClock returns a Clock measuring from start, e.g. process boot time
func SinceClock(start time.Time) Clock {
	return func() uint64 {
		d := time.Since(start)
		if d < 0 {
			return 0
		}
		return uint64(d.Milliseconds())
	}
}
