// FILE: lixenwraith/tinylog/config.go
package tinylog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"

	"github.com/lixenwraith/tinylog/sanitizer"
)

// Config holds all logger configuration values
type Config struct {
	// Initial threshold
	Level Level `toml:"level"`

	// Rendering
	BufferSize    int64  `toml:"buffer_size"`    // Fixed capacity of the shared line buffer
	Newline       string `toml:"newline"`        // Terminator appended to every line
	ShowTimestamp bool   `toml:"show_timestamp"` // Prefix lines with elapsed time
	Sanitization  string `toml:"sanitization"`   // "raw", "txt", or "json"

	// Concurrency
	LockDiscipline string `toml:"lock_discipline"` // "mutex" or "semaphore"

	// Output
	Sink     string `toml:"sink"`      // "stdout", "stderr", "file", or "discard"
	FilePath string `toml:"file_path"` // Used when sink is "file"

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal errors to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level: LevelInfo,

	BufferSize:    defaultBufferSize,
	Newline:       defaultNewline,
	ShowTimestamp: true,
	Sanitization:  string(sanitizer.PolicyRaw),

	LockDiscipline: LockMutex,

	Sink:     SinkStdout,
	FilePath: "./tinylog.log",

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file, with optional CLI overrides, and returns a validated Config
func NewConfigFromFile(path string, args []string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("tinylog.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	// Missing file is not an error, registered defaults apply
	if err := loader.Load(path, args); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "tinylog.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides keyed by toml tag
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies values found in the loader into cfg
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

var levelType = reflect.TypeOf(Level(0))

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		// Level accepts names as well as numbers
		if strVal, ok := value.(string); ok && field.Type() == levelType {
			level, err := ParseLevel(strVal)
			if err != nil {
				return err
			}
			field.SetInt(int64(level))
			return nil
		}
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			field.SetInt(rv.Int())
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if !c.Level.valid() {
		return fmtErrorf("invalid level: %d (use %d..%d)", c.Level, LevelDebug, LevelFatal)
	}

	if c.BufferSize <= 0 || c.BufferSize > maxBufferSize {
		return fmtErrorf("buffer_size must be between 1 and %d: %d", maxBufferSize, c.BufferSize)
	}

	switch sanitizer.PolicyPreset(c.Sanitization) {
	case sanitizer.PolicyRaw, sanitizer.PolicyTxt, sanitizer.PolicyJSON:
	default:
		return fmtErrorf("invalid sanitization: '%s' (use raw, txt, or json)", c.Sanitization)
	}

	if c.LockDiscipline != LockMutex && c.LockDiscipline != LockSemaphore {
		return fmtErrorf("invalid lock_discipline: '%s' (use mutex or semaphore)", c.LockDiscipline)
	}

	switch c.Sink {
	case SinkStdout, SinkStderr, SinkDiscard:
	case SinkFile:
		if strings.TrimSpace(c.FilePath) == "" {
			return fmtErrorf("file_path cannot be empty when sink is file")
		}
	default:
		return fmtErrorf("invalid sink: '%s' (use stdout, stderr, file, or discard)", c.Sink)
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
