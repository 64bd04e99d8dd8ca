// FILE: lixenwraith/tinylog/default.go
package tinylog

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default returns the process-wide logger used by the package-level functions
func Default() *Logger {
	return defaultLogger
}

// Init initializes the default logger with the given threshold
func Init(level Level) error {
	return defaultLogger.Init(level)
}

// ApplyConfig initializes the default logger from cfg
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// Shutdown closes the default logger
func Shutdown() error {
	return defaultLogger.Shutdown()
}

// Flush commits buffered output of the default logger
func Flush() error {
	return defaultLogger.Flush()
}

// SetLevel changes the default logger threshold
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// GetLevel returns the default logger threshold
func GetLevel() Level {
	return defaultLogger.GetLevel()
}

// Log emits a record at the given level
func Log(level Level, format string, args ...any) {
	defaultLogger.Log(level, format, args...)
}

// Debugf logs a message at debug level
func Debugf(format string, args ...any) {
	defaultLogger.Debugf(format, args...)
}

// Infof logs a message at info level
func Infof(format string, args ...any) {
	defaultLogger.Infof(format, args...)
}

// Warnf logs a message at warning level
func Warnf(format string, args ...any) {
	defaultLogger.Warnf(format, args...)
}

// Errorf logs a message at error level
func Errorf(format string, args ...any) {
	defaultLogger.Errorf(format, args...)
}

// Fatalf logs a message at fatal level, it does not exit
func Fatalf(format string, args ...any) {
	defaultLogger.Fatalf(format, args...)
}

// Dump logs a compact dump of v
func Dump(level Level, label string, v any) {
	defaultLogger.Dump(level, label, v)
}
