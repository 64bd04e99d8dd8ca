// FILE: lixenwraith/tinylog/override.go
package tinylog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's pending configuration.
// Each override should be in the format "key=value". Overrides are only accepted before
// the logger is initialized; the buffer, lock and sink are fixed afterwards.
//
// Example:
//
//	logger := tinylog.NewLogger()
//	err := logger.ApplyOverride(
//	    "level=debug",
//	    "buffer_size=256",
//	    `newline=\r\n`,
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	if l.state.IsInitialized.Load() {
		return fmtErrorf("logger already initialized, configuration is fixed")
	}

	cfg := l.getConfig().Clone()
	if err := cfg.ApplyOverride(overrides...); err != nil {
		return err
	}

	l.currentConfig.Store(cfg)
	return nil
}

// ApplyOverride applies "key=value" overrides to c and validates the result.
// On error c may be partially updated; callers apply to a clone.
func (c *Config) ApplyOverride(overrides ...string) error {
	var errs []error
	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(c, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return c.Validate()
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("tinylog: multiple configuration errors:")
	for i, err := range errs {
		errMsg := strings.TrimPrefix(err.Error(), errPrefix)
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		// Numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = Level(numVal)
		} else {
			levelVal, err := ParseLevel(value)
			if err != nil {
				return fmtErrorf("invalid level value '%s': %w", value, err)
			}
			cfg.Level = levelVal
		}

	case "buffer_size":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for buffer_size '%s': %w", value, err)
		}
		cfg.BufferSize = intVal
	case "newline":
		cfg.Newline = unescape(value)
	case "show_timestamp":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for show_timestamp '%s': %w", value, err)
		}
		cfg.ShowTimestamp = boolVal
	case "sanitization":
		cfg.Sanitization = value

	case "lock_discipline":
		cfg.LockDiscipline = value

	case "sink":
		cfg.Sink = value
	case "file_path":
		cfg.FilePath = value

	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}

// unescape interprets Go escape sequences such as \r\n, returning the input unchanged when it has none or is malformed
func unescape(value string) string {
	if !strings.Contains(value, `\`) {
		return value
	}
	if s, err := strconv.Unquote(`"` + value + `"`); err == nil {
		return s
	}
	return value
}
