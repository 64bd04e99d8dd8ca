// FILE: lixenwraith/tinylog/utility_test.go
package tinylog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warn", LevelWarning, false},
		{"Warning", LevelWarning, false},
		{"error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"unknown", LevelUnknown, true},
		{"invalid", LevelUnknown, true},
		{"", LevelUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLevelTag(t *testing.T) {
	tests := []struct {
		level Level
		tag   string
		name  string
	}{
		{LevelDebug, "[DEBUG]   ", "DEBUG"},
		{LevelInfo, "[INFO]    ", "INFO"},
		{LevelWarning, "[WARNING] ", "WARNING"},
		{LevelError, "[ERROR]   ", "ERROR"},
		{LevelFatal, "[FATAL]   ", "FATAL"},
		{LevelUnknown, "[UNKNOW]  ", "UNKNOWN"},
		{Level(7), "[UNKNOW]  ", "UNKNOWN"},
		{Level(-1), "[UNKNOW]  ", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.level.Tag())
			assert.Len(t, tt.level.Tag(), 10)
			assert.Equal(t, tt.name, tt.level.String())
		})
	}
}

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"key=value", "key", "value", false},
		{" key = value ", "key", "value", false},
		{"key=value=with=equals", "key", "value=with=equals", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
		{"key=", "key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("test error: %s", "details")
	assert.Equal(t, "tinylog: test error: details", err.Error())

	// Already prefixed
	err = fmtErrorf("tinylog: existing prefix")
	assert.Equal(t, "tinylog: existing prefix", err.Error())

	// Wrapping keeps the chain
	base := errors.New("base")
	assert.ErrorIs(t, fmtErrorf("wrapped: %w", base), base)
}

func TestCombineErrors(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, e1, combineErrors(e1, nil))
	assert.Equal(t, e2, combineErrors(nil, e2))

	combined := combineErrors(e1, e2)
	assert.Equal(t, "first; second", combined.Error())
	assert.ErrorIs(t, combined, e2)
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "\r\n", unescape(`\r\n`))
	assert.Equal(t, "\n", unescape("\n"))
	assert.Equal(t, "plain", unescape("plain"))
	assert.Equal(t, `bad\q`, unescape(`bad\q`))
}
