// FILE: lixenwraith/tinylog/logger.go
package tinylog

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tinylog/formatter"
	"github.com/lixenwraith/tinylog/sanitizer"
)

// Logger is the core struct that encapsulates all logger functionality
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	initMu        sync.Mutex

	// Fixed once initialized
	renderer      *formatter.Renderer
	lock          sync.Locker
	sink          *sink
	showTimestamp bool

	clock Clock

	// Supplied by the Builder, override the config derived defaults
	customWriter io.Writer
	customLocker sync.Locker
}

// NewLogger creates an uninitialized Logger holding the default configuration.
// Logging calls are no-ops until ApplyConfig or Init succeeds.
func NewLogger() *Logger {
	l := &Logger{
		clock: monotonicClock(),
	}

	cfg := DefaultConfig()
	l.currentConfig.Store(cfg)

	l.state.IsInitialized.Store(false)
	l.state.ShutdownCalled.Store(false)
	l.state.Threshold.Store(int64(cfg.Level))
	l.state.LoggerStartTime.Store(time.Time{})

	return l
}

// ApplyConfig validates cfg, allocates the render buffer, lock and sink, and initializes the logger.
// It succeeds once per logger; the buffer, lock and sink cannot be changed afterwards.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	if l.state.IsInitialized.Load() {
		return fmtErrorf("logger already initialized")
	}
	if l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger already shut down")
	}

	return l.applyConfig(cfg.Clone())
}

// Init initializes the logger from its current configuration with the given threshold.
// An invalid level keeps the configured one.
func (l *Logger) Init(level Level) error {
	cfg := l.getConfig().Clone()
	if level.valid() {
		cfg.Level = level
	}
	return l.ApplyConfig(cfg)
}

// GetConfig returns a copy of current configuration, Level reflects the live threshold
func (l *Logger) GetConfig() *Config {
	cfg := l.getConfig().Clone()
	cfg.Level = Level(l.state.Threshold.Load())
	return cfg
}

// SetLevel changes the threshold. Values outside LevelDebug..LevelFatal are ignored.
func (l *Logger) SetLevel(level Level) {
	if !Enabled {
		return
	}
	if !level.valid() {
		return
	}
	l.state.Threshold.Store(int64(level))
}

// GetLevel returns the current threshold, LevelUnknown when logging is compiled out
func (l *Logger) GetLevel() Level {
	if !Enabled {
		return LevelUnknown
	}
	return Level(l.state.Threshold.Load())
}

// Log emits one printf-style record at the given level.
// Records below the threshold return without locking; oversized lines are truncated, not dropped.
func (l *Logger) Log(level Level, format string, args ...any) {
	if !Enabled {
		return
	}
	l.log(level, format, args)
}

// Debugf logs a message at debug level
func (l *Logger) Debugf(format string, args ...any) {
	if !Enabled {
		return
	}
	l.log(LevelDebug, format, args)
}

// Infof logs a message at info level
func (l *Logger) Infof(format string, args ...any) {
	if !Enabled {
		return
	}
	l.log(LevelInfo, format, args)
}

// Warnf logs a message at warning level
func (l *Logger) Warnf(format string, args ...any) {
	if !Enabled {
		return
	}
	l.log(LevelWarning, format, args)
}

// Errorf logs a message at error level
func (l *Logger) Errorf(format string, args ...any) {
	if !Enabled {
		return
	}
	l.log(LevelError, format, args)
}

// Fatalf logs a message at fatal level. It does not exit.
func (l *Logger) Fatalf(format string, args ...any) {
	if !Enabled {
		return
	}
	l.log(LevelFatal, format, args)
}

// Dump logs "label=<value>" with a compact single-line dump of v
func (l *Logger) Dump(level Level, label string, v any) {
	if !Enabled {
		return
	}
	l.dump(level, label, v)
}

// Flush commits buffered sink output, for sinks that support it
func (l *Logger) Flush() error {
	if !Enabled {
		return nil
	}
	if !l.state.IsInitialized.Load() || l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger not initialized or already shut down")
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger already shut down")
	}
	return l.sink.sync()
}

// Shutdown stops accepting records, waits for an in-flight record and closes a sink the logger opened.
// Calling it more than once is a no-op.
func (l *Logger) Shutdown() error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	if !l.state.IsInitialized.Load() {
		// Nothing to release, allow a later initialization
		l.state.ShutdownCalled.Store(false)
		return nil
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.state.IsInitialized.Store(false)

	return l.sink.close()
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// applyConfig builds the fixed resources, assuming initMu is held
func (l *Logger) applyConfig(cfg *Config) error {
	s, err := openSink(cfg, l.customWriter)
	if err != nil {
		return err
	}

	var san *sanitizer.Sanitizer
	if policy := sanitizer.PolicyPreset(cfg.Sanitization); policy != sanitizer.PolicyRaw {
		san = sanitizer.New().Policy(policy)
	}

	l.renderer = formatter.New(int(cfg.BufferSize), cfg.Newline, san)
	l.sink = s
	l.showTimestamp = cfg.ShowTimestamp
	if l.customLocker != nil {
		l.lock = l.customLocker
	} else {
		l.lock = newLocker(cfg.LockDiscipline)
	}

	l.currentConfig.Store(cfg)
	l.state.Threshold.Store(int64(cfg.Level))
	l.state.LoggerStartTime.Store(time.Now())

	// Publishes the fields above to the lock-free gate
	l.state.IsInitialized.Store(true)
	return nil
}
