//go:build tinylog_disabled

package tinylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiledOut(t *testing.T) {
	require.False(t, Enabled)

	lk := &countingLocker{}
	rec := &recorder{}
	logger, err := NewBuilder().Writer(rec).Locker(lk).Level(LevelDebug).Build()
	require.NoError(t, err)
	defer logger.Shutdown()

	logger.Log(LevelFatal, "never")
	logger.Fatalf("never")
	logger.Dump(LevelFatal, "v", 1)
	logger.SetLevel(LevelError)

	assert.Empty(t, rec.Lines())
	assert.Zero(t, lk.locks)
	assert.Equal(t, LevelUnknown, logger.GetLevel())
	assert.NoError(t, logger.Flush())
}
