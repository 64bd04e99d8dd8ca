// FILE: lixenwraith/tinylog/logger_test.go
package tinylog

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures each sink write as one entry, copying the aliased bytes
type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, string(p))
	return len(p), nil
}

func (r *recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// failingWriter rejects every write
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("uart busy")
}

// shortWriter accepts half of every write
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

// createTestLogger builds an initialized logger writing to a recorder, timestamps off
func createTestLogger(t *testing.T, opts ...func(*Builder)) (*Logger, *recorder) {
	t.Helper()
	if !Enabled {
		t.Skip("logging compiled out")
	}

	rec := &recorder{}
	b := NewBuilder().Writer(rec).ShowTimestamp(false).Level(LevelDebug)
	for _, opt := range opts {
		opt(b)
	}

	logger, err := b.Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Shutdown() })

	return logger, rec
}

func fixedClock(ms uint64) Clock {
	return func() uint64 { return ms }
}

var allLevels = []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelFatal}

// TestNewLogger verifies that a new logger is created with the correct initial state
func TestNewLogger(t *testing.T) {
	logger := NewLogger()

	assert.NotNil(t, logger)
	assert.False(t, logger.state.IsInitialized.Load())
	assert.False(t, logger.state.ShutdownCalled.Load())
	assert.Equal(t, DefaultConfig(), logger.GetConfig())
	if Enabled {
		assert.Equal(t, LevelInfo, logger.GetLevel())
	}
}

func TestLogBeforeInitIsNoop(t *testing.T) {
	if !Enabled {
		t.Skip("logging compiled out")
	}

	rec := &recorder{}
	logger := NewLogger()
	logger.customWriter = rec

	logger.Log(LevelFatal, "too early")
	logger.Dump(LevelFatal, "v", 1)
	assert.Empty(t, rec.Lines())
	assert.Error(t, logger.Flush())

	require.NoError(t, logger.Init(LevelDebug))
	defer logger.Shutdown()

	logger.Log(LevelInfo, "ready")
	assert.Len(t, rec.Lines(), 1)
}

func TestLevelGate(t *testing.T) {
	for _, threshold := range allLevels {
		for _, level := range allLevels {
			logger, rec := createTestLogger(t, func(b *Builder) { b.Level(threshold) })

			logger.Log(level, "gate %d/%d", level, threshold)

			if level < threshold {
				assert.Empty(t, rec.Lines(), "level %s below %s must be suppressed", level, threshold)
			} else {
				assert.Len(t, rec.Lines(), 1, "level %s at or above %s must be emitted", level, threshold)
			}
		}
	}
}

func TestLogExactOutput(t *testing.T) {
	t.Run("tag message and terminator", func(t *testing.T) {
		logger, rec := createTestLogger(t, func(b *Builder) {
			b.Level(LevelInfo).Newline("\r\n")
		})

		logger.Log(LevelInfo, "value=%d", 42)
		logger.Log(LevelError, "disk %s", "full")

		assert.Equal(t, []string{
			"[INFO]    value=42\r\n",
			"[ERROR]   disk full\r\n",
		}, rec.Lines())
	})

	t.Run("timestamp prefix", func(t *testing.T) {
		logger, rec := createTestLogger(t, func(b *Builder) {
			b.ShowTimestamp(true).Clock(fixedClock(3_661_500))
		})

		logger.Log(LevelWarning, "hot")
		assert.Equal(t, []string{"[1:01:01.500] [WARNING] hot\n"}, rec.Lines())
	})

	t.Run("convenience helpers", func(t *testing.T) {
		logger, rec := createTestLogger(t)

		logger.Debugf("d%d", 1)
		logger.Infof("i%d", 2)
		logger.Warnf("w%d", 3)
		logger.Errorf("e%d", 4)
		logger.Fatalf("f%d", 5)

		assert.Equal(t, []string{
			"[DEBUG]   d1\n",
			"[INFO]    i2\n",
			"[WARNING] w3\n",
			"[ERROR]   e4\n",
			"[FATAL]   f5\n",
		}, rec.Lines())
	})

	t.Run("out of range level uses unknown tag", func(t *testing.T) {
		logger, rec := createTestLogger(t)

		logger.Log(Level(7), "odd")
		logger.Log(LevelUnknown, "sentinel")
		logger.Log(Level(-3), "below every threshold")

		assert.Equal(t, []string{
			"[UNKNOW]  odd\n",
			"[UNKNOW]  sentinel\n",
		}, rec.Lines())
	})
}

func TestLogTruncation(t *testing.T) {
	logger, rec := createTestLogger(t, func(b *Builder) { b.BufferSize(24) })

	logger.Infof("%s", strings.Repeat("a", 200))
	logger.Infof("short")

	lines := rec.Lines()
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 24)
	assert.Equal(t, "[INFO]    "+strings.Repeat("a", 14), lines[0])
	assert.Equal(t, "[INFO]    short\n", lines[1])

	stats := logger.Stats()
	assert.Equal(t, uint64(2), stats.Emitted)
	assert.Equal(t, uint64(1), stats.Truncated)
}

func TestSetLevel(t *testing.T) {
	logger, rec := createTestLogger(t, func(b *Builder) { b.Level(LevelInfo) })

	for _, level := range allLevels {
		logger.SetLevel(level)
		assert.Equal(t, level, logger.GetLevel())
	}

	logger.SetLevel(LevelWarning)
	for _, invalid := range []Level{LevelUnknown, Level(-1), Level(9), Level(1 << 40)} {
		logger.SetLevel(invalid)
		assert.Equal(t, LevelWarning, logger.GetLevel(), "invalid level %d must be ignored", invalid)
	}

	logger.Infof("suppressed")
	logger.Warnf("kept")
	assert.Equal(t, []string{"[WARNING] kept\n"}, rec.Lines())

	// GetConfig reflects the live threshold
	assert.Equal(t, LevelWarning, logger.GetConfig().Level)
}

func TestDump(t *testing.T) {
	type reading struct {
		Channel int
		Volts   float64
	}

	logger, rec := createTestLogger(t)

	logger.Dump(LevelInfo, "adc", reading{Channel: 2, Volts: 3.3})
	logger.SetLevel(LevelError)
	logger.Dump(LevelInfo, "adc", reading{})

	lines := rec.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "[INFO]    adc="))
	assert.Contains(t, lines[0], "Channel:2")
	assert.Contains(t, lines[0], "Volts:3.3")
}

func TestApplyConfigTwice(t *testing.T) {
	logger, _ := createTestLogger(t)

	err := logger.ApplyConfig(DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")

	err = logger.Init(LevelDebug)
	assert.Error(t, err)
}

func TestApplyConfigInvalid(t *testing.T) {
	logger := NewLogger()

	assert.Error(t, logger.ApplyConfig(nil))

	cfg := DefaultConfig()
	cfg.BufferSize = 0
	assert.Error(t, logger.ApplyConfig(cfg))
	assert.False(t, logger.state.IsInitialized.Load())

	// A failed attempt does not consume the single initialization
	require.NoError(t, logger.ApplyConfig(func() *Config {
		c := DefaultConfig()
		c.Sink = SinkDiscard
		return c
	}()))
	defer logger.Shutdown()
	assert.True(t, logger.state.IsInitialized.Load())
}

func TestInitSetsThreshold(t *testing.T) {
	if !Enabled {
		t.Skip("logging compiled out")
	}

	logger := NewLogger()
	require.NoError(t, logger.ApplyOverride("sink=discard"))

	require.NoError(t, logger.Init(LevelWarning))
	defer logger.Shutdown()

	assert.Equal(t, LevelWarning, logger.GetLevel())
	assert.Equal(t, LevelWarning, logger.GetConfig().Level)

	logger.Infof("suppressed")
	assert.Equal(t, uint64(0), logger.Stats().Emitted)
	logger.Warnf("emitted")
	assert.Equal(t, uint64(1), logger.Stats().Emitted)

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	logger.Debugf("emitted after lowering")
	assert.Equal(t, uint64(2), logger.Stats().Emitted)
}

func TestInitInvalidLevelKeepsDefault(t *testing.T) {
	logger := NewLogger()
	require.NoError(t, logger.ApplyOverride("sink=discard"))

	require.NoError(t, logger.Init(Level(42)))
	defer logger.Shutdown()

	if Enabled {
		assert.Equal(t, LevelInfo, logger.GetLevel())
	}
}

func TestSinkErrors(t *testing.T) {
	t.Run("failed write", func(t *testing.T) {
		logger, _ := createTestLogger(t, func(b *Builder) { b.Writer(failingWriter{}) })

		assert.NotPanics(t, func() {
			logger.Infof("one")
			logger.Infof("two")
		})

		stats := logger.Stats()
		assert.Equal(t, uint64(2), stats.SinkErrors)
		assert.Zero(t, stats.Emitted)
	})

	t.Run("short write", func(t *testing.T) {
		logger, _ := createTestLogger(t, func(b *Builder) { b.Writer(shortWriter{}) })

		logger.Infof("partial")
		assert.Equal(t, uint64(1), logger.Stats().SinkErrors)
	})

	t.Run("sink func", func(t *testing.T) {
		var got []string
		logger, _ := createTestLogger(t, func(b *Builder) {
			b.Writer(SinkFunc(func(p []byte) { got = append(got, string(p)) }))
		})

		logger.Errorf("code=%x", 0xbeef)
		assert.Equal(t, []string{"[ERROR]   code=beef\n"}, got)
	})
}

func TestSanitizedOutput(t *testing.T) {
	logger, rec := createTestLogger(t, func(b *Builder) { b.Sanitization("txt") })

	logger.Infof("bell%c", rune(7))
	assert.Equal(t, []string{"[INFO]    bell<07>\n"}, rec.Lines())
}
