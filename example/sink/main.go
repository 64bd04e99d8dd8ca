// FILE: example/sink/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/tinylog"
)

const logDirectory = "./temp_logs"

// main runs one logger per sink kind.
func main() {
	if err := os.RemoveAll(logDirectory); err != nil {
		fmt.Printf("Warning: could not remove old log directory: %v\n", err)
	}

	fmt.Println("--- Running Sink Test Suite ---")
	fmt.Printf("! File-based logs will be in the '%s' directory.\n", logDirectory)

	runTestPhase("1: File", "sink=file", "file_path="+filepath.Join(logDirectory, "device.log"))
	runTestPhase("2: Stdout", "sink=stdout")

	fmt.Fprintln(os.Stderr, "\n---")
	runTestPhase("3: Stderr", "sink=stderr")
	fmt.Fprintln(os.Stderr, "---")

	runTestPhase("4: Discard (lines are dropped)", "sink=discard")

	testUART()

	fmt.Println("\n--- Sink Test Suite Complete ---")
}

// runTestPhase initializes a fresh logger with overrides and logs at each level.
func runTestPhase(phaseName string, overrides ...string) {
	fmt.Printf("\n[Phase %s]\n", phaseName)
	fmt.Println("  Config:", overrides)

	logger := tinylog.NewLogger()
	if err := logger.ApplyOverride(append(overrides, "level=debug")...); err != nil {
		fmt.Printf("  ERROR: invalid overrides: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(tinylog.LevelDebug); err != nil {
		fmt.Printf("  ERROR: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Debugf("phase=%q event=start", phaseName)
	logger.Infof("This is an info message.")
	logger.Warnf("This is a warning message.")
	logger.Errorf("This is an error message.")
	logger.Debugf("phase=%q event=end", phaseName)

	if err := logger.Flush(); err != nil {
		fmt.Printf("  WARNING: Flush error in phase '%s': %v\n", phaseName, err)
	}
	shutdownLogger(logger, phaseName)
}

// testUART emulates a serial port taking (bytes, length) with a CRLF terminator.
func testUART() {
	fmt.Println("\n[Phase 5: Function sink]")

	var frames int
	uart := tinylog.SinkFunc(func(p []byte) {
		frames++
		fmt.Printf("  uart tx %3d bytes: %q\n", len(p), p)
	})

	logger, err := tinylog.NewBuilder().
		Writer(uart).
		Newline("\r\n").
		BufferSize(48).
		Build()
	if err != nil {
		fmt.Printf("  ERROR: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Infof("short line")
	logger.Infof("long line %s", strings.Repeat("#", 64))
	fmt.Printf("  %d frames, %d truncated\n", frames, logger.Stats().Truncated)

	shutdownLogger(logger, "5: Function sink")
}

// shutdownLogger is a helper to gracefully shut down the logger instance.
func shutdownLogger(l *tinylog.Logger, phaseName string) {
	if err := l.Shutdown(); err != nil {
		fmt.Printf("  WARNING: Shutdown error in phase '%s': %v\n", phaseName, err)
	}
}
