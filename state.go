// FILE: lixenwraith/tinylog/state.go
package tinylog

import (
	"sync/atomic"
	"time"
)

// State encapsulates the runtime state of the logger
type State struct {
	IsInitialized  atomic.Bool
	ShutdownCalled atomic.Bool

	// Current severity threshold, read lock-free by the gate
	Threshold atomic.Int64

	// Statistics
	LoggerStartTime atomic.Value  // stores time.Time, set at initialization
	TotalEmitted    atomic.Uint64 // Lines handed to the sink
	TotalTruncated  atomic.Uint64 // Lines cut to the buffer capacity
	SinkErrors      atomic.Uint64 // Failed or short sink writes
}

// Stats is a point-in-time snapshot of logger counters
type Stats struct {
	Level      Level
	Emitted    uint64
	Truncated  uint64
	SinkErrors uint64
	Uptime     time.Duration
}

// Stats returns the current counters. Uptime is zero until the logger is initialized.
func (l *Logger) Stats() Stats {
	s := Stats{
		Level:      Level(l.state.Threshold.Load()),
		Emitted:    l.state.TotalEmitted.Load(),
		Truncated:  l.state.TotalTruncated.Load(),
		SinkErrors: l.state.SinkErrors.Load(),
	}
	if start, ok := l.state.LoggerStartTime.Load().(time.Time); ok && !start.IsZero() {
		s.Uptime = time.Since(start)
	}
	return s
}
