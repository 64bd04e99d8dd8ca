// FILE: lixenwraith/tinylog/constant.go
package tinylog

// Severity levels, ordered by increasing urgency
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
	LevelUnknown // Sentinel for out-of-range values
)

// Lock disciplines
const (
	LockMutex     = "mutex"
	LockSemaphore = "semaphore"
)

// Named sinks
const (
	SinkStdout  = "stdout"
	SinkStderr  = "stderr"
	SinkFile    = "file"
	SinkDiscard = "discard"
)

// Defaults
const (
	// Capacity of the shared render buffer, covers timestamp, tag, message and terminator
	defaultBufferSize int64 = 128
	// Terminator appended after every message
	defaultNewline = "\n"
	// Upper bound for buffer_size, the buffer lives for the process lifetime
	maxBufferSize int64 = 64 * 1024
)
