// FILE: lixenwraith/tinylog/compat/zap.go
package compat

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/tinylog"
)

var _ zapcore.Core = (*ZapCore)(nil)

// ZapCore is a zapcore.Core that renders entries as tinylog lines: "[name: ]message k=v ...".
// Fields are flattened in key order; zap levels map onto the five tinylog levels.
type ZapCore struct {
	logger *tinylog.Logger
	fields []zapcore.Field
}

// NewZapCore creates a core writing through logger
func NewZapCore(logger *tinylog.Logger) *ZapCore {
	return &ZapCore{logger: logger}
}

// Enabled follows the live tinylog threshold
func (c *ZapCore) Enabled(lvl zapcore.Level) bool {
	return zapLevel(lvl) >= c.logger.GetLevel()
}

// With returns a core carrying additional context fields
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &ZapCore{
		logger: c.logger,
		fields: make([]zapcore.Field, 0, len(c.fields)+len(fields)),
	}
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return clone
}

// Check adds this core when the entry passes the threshold
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry. Errors from the sink are absorbed by the logger.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	var sb strings.Builder
	if ent.LoggerName != "" {
		sb.WriteString(ent.LoggerName)
		sb.WriteString(": ")
	}
	sb.WriteString(ent.Message)

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, enc.Fields[k])
	}

	c.logger.Log(zapLevel(ent.Level), "%s", sb.String())
	return nil
}

// Sync flushes the underlying sink
func (c *ZapCore) Sync() error {
	return c.logger.Flush()
}

// zapLevel maps zap severities, the panic and fatal family collapse to LevelFatal
func zapLevel(lvl zapcore.Level) tinylog.Level {
	switch {
	case lvl <= zapcore.DebugLevel:
		return tinylog.LevelDebug
	case lvl == zapcore.InfoLevel:
		return tinylog.LevelInfo
	case lvl == zapcore.WarnLevel:
		return tinylog.LevelWarning
	case lvl == zapcore.ErrorLevel:
		return tinylog.LevelError
	default:
		return tinylog.LevelFatal
	}
}
