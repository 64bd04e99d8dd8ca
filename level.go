// FILE: lixenwraith/tinylog/level.go
package tinylog

import (
	"strings"
)

// Level is the severity of a record and the type of the logger threshold
type Level int64

// Fixed-width tags, one per level, the last one is the sentinel
var levelTags = [...]string{
	"[DEBUG]   ",
	"[INFO]    ",
	"[WARNING] ",
	"[ERROR]   ",
	"[FATAL]   ",
	"[UNKNOW]  ",
}

var levelNames = [...]string{"DEBUG", "INFO", "WARNING", "ERROR", "FATAL", "UNKNOWN"}

// clamp maps any value outside the defined range to LevelUnknown
func (l Level) clamp() Level {
	if l < LevelDebug || l > LevelUnknown {
		return LevelUnknown
	}
	return l
}

// valid reports whether l can be used as a threshold
func (l Level) valid() bool {
	return l >= LevelDebug && l < LevelUnknown
}

// Tag returns the bracketed, padded label rendered in front of each message.
func (l Level) Tag() string {
	return levelTags[l.clamp()]
}

// String returns the level name.
func (l Level) String() string {
	return levelNames[l.clamp()]
}

// ParseLevel converts a level name to its constant.
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelUnknown, fmtErrorf("invalid level string: '%s' (use debug, info, warning, error, fatal)", levelStr)
	}
}
