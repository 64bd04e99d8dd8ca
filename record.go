// FILE: lixenwraith/tinylog/record.go
package tinylog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// admit is the gate: a level under the threshold is rejected before any lock or buffer access
func (l *Logger) admit(level Level) bool {
	if level < Level(l.state.Threshold.Load()) {
		return false
	}
	return l.state.IsInitialized.Load() && !l.state.ShutdownCalled.Load()
}

// log renders one printf-style record and hands it to the sink
func (l *Logger) log(level Level, format string, args []any) {
	if !l.admit(level) {
		return
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	// Shutdown may have closed the sink while this caller waited
	if l.state.ShutdownCalled.Load() {
		return
	}

	line := l.renderer.Render(level.Tag(), l.showTimestamp, l.clock(), format, args)
	l.emit(line)
}

// dump renders label=<value> and hands it to the sink
func (l *Logger) dump(level Level, label string, v any) {
	if !l.admit(level) {
		return
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if l.state.ShutdownCalled.Load() {
		return
	}

	line := l.renderer.RenderValue(level.Tag(), l.showTimestamp, l.clock(), label, v)
	l.emit(line)
}

// emit writes a rendered line, the caller holds the lock. Sink failures are counted, never returned.
func (l *Logger) emit(line []byte) {
	if l.renderer.Truncated() {
		l.state.TotalTruncated.Add(1)
	}

	n, err := l.sink.w.Write(line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if err != nil {
		l.state.SinkErrors.Add(1)
		l.internalLog("%s sink write failed: %v\n", l.sink.name, err)
		return
	}
	l.state.TotalEmitted.Add(1)
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "tinylog: " prefix
	if !strings.HasPrefix(format, errPrefix) {
		format = errPrefix + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
