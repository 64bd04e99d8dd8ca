// FILE: lixenwraith/tinylog/builder.go
package tinylog

import (
	"io"
	"sync"

	"github.com/lixenwraith/tinylog/sanitizer"
)

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg    *Config
	writer io.Writer
	locker sync.Locker
	clock  Clock
	err    error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates and initializes a new Logger with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()
	logger.customWriter = b.writer
	logger.customLocker = b.locker
	if b.clock != nil {
		logger.clock = b.clock
	}

	// ApplyConfig handles all initialization and validation
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Config replaces the builder's configuration with a copy of cfg, e.g. one loaded from file.
func (b *Builder) Config(cfg *Config) *Builder {
	if cfg == nil {
		if b.err == nil {
			b.err = fmtErrorf("configuration cannot be nil")
		}
		return b
	}
	b.cfg = cfg.Clone()
	return b
}

// Level sets the initial threshold.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the initial threshold from a name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// BufferSize sets the render buffer capacity in bytes.
func (b *Builder) BufferSize(size int64) *Builder {
	b.cfg.BufferSize = size
	return b
}

// Newline sets the line terminator.
func (b *Builder) Newline(newline string) *Builder {
	b.cfg.Newline = newline
	return b
}

// ShowTimestamp toggles the elapsed time prefix.
func (b *Builder) ShowTimestamp(show bool) *Builder {
	b.cfg.ShowTimestamp = show
	return b
}

// LockDiscipline selects "mutex" or "semaphore".
func (b *Builder) LockDiscipline(discipline string) *Builder {
	b.cfg.LockDiscipline = discipline
	return b
}

// Sink selects a named sink.
func (b *Builder) Sink(name string) *Builder {
	b.cfg.Sink = name
	return b
}

// FilePath sets the file used by the "file" sink.
func (b *Builder) FilePath(path string) *Builder {
	b.cfg.FilePath = path
	return b
}

// Sanitization sets the message sanitization policy.
func (b *Builder) Sanitization(policy sanitizer.PolicyPreset) *Builder {
	b.cfg.Sanitization = string(policy)
	return b
}

// InternalErrorsToStderr reports sink failures on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Writer sets a custom sink, the named sink is then ignored. The logger never closes it.
func (b *Builder) Writer(w io.Writer) *Builder {
	b.writer = w
	return b
}

// Clock sets the elapsed time source.
func (b *Builder) Clock(c Clock) *Builder {
	b.clock = c
	return b
}

// Locker sets a custom exclusion primitive, the lock discipline is then ignored.
func (b *Builder) Locker(lk sync.Locker) *Builder {
	b.locker = lk
	return b
}

// Example usage:
// logger, err := tinylog.NewBuilder().
//
//	LevelString("debug").
//	BufferSize(256).
//	LockDiscipline("semaphore").
//	Writer(uart).
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Infof("boot in %d ms", elapsed)
//
// }
