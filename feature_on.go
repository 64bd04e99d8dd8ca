//go:build !tinylog_disabled

package tinylog

// Enabled reports whether logging is compiled in. Build with -tags tinylog_disabled to remove it.
const Enabled = true
