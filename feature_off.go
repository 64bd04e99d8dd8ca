//go:build tinylog_disabled

package tinylog

// Enabled is false under the tinylog_disabled tag; every entry point reduces to a return.
const Enabled = false
