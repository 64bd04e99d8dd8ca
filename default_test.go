// FILE: lixenwraith/tinylog/default_test.go
package tinylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultLogger swaps the package-level logger for the duration of the test
func TestDefaultLogger(t *testing.T) {
	if !Enabled {
		t.Skip("logging compiled out")
	}

	saved := defaultLogger
	t.Cleanup(func() { defaultLogger = saved })

	rec := &recorder{}
	defaultLogger = NewLogger()
	defaultLogger.customWriter = rec
	assert.Same(t, defaultLogger, Default())

	// No output before initialization
	Infof("early")
	assert.Empty(t, rec.Lines())

	require.NoError(t, ApplyConfig(func() *Config {
		cfg := DefaultConfig()
		cfg.ShowTimestamp = false
		return cfg
	}()))
	assert.Error(t, Init(LevelDebug))

	Log(LevelInfo, "n=%d", 1)
	Debugf("hidden")
	SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, GetLevel())
	Debugf("d")
	Infof("i")
	Warnf("w")
	Errorf("e")
	Fatalf("f")
	Dump(LevelInfo, "x", 5)
	assert.NoError(t, Flush())

	assert.Equal(t, []string{
		"[INFO]    n=1\n",
		"[DEBUG]   d\n",
		"[INFO]    i\n",
		"[WARNING] w\n",
		"[ERROR]   e\n",
		"[FATAL]   f\n",
		"[INFO]    x=5\n",
	}, rec.Lines())

	require.NoError(t, Shutdown())
	Infof("after")
	assert.Len(t, rec.Lines(), 7)
}
