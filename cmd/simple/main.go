package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/tinylog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[tinylog]
  level = 0 # Debug
  buffer_size = 160
  newline = "\r\n"
  show_timestamp = true
  lock_discipline = "mutex"
  sink = "stdout"
  sanitization = "txt"
  # Other settings use defaults
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	// File values, then command-line overrides
	cfg, err := tinylog.NewConfigFromFile(configFile, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := tinylog.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logger initialized.")

	tinylog.Debugf("This is a debug message. user_id=%d", 123)
	tinylog.Infof("Application starting...")
	tinylog.Warnf("Potential issue detected. threshold=%.2f", 0.95)
	tinylog.Errorf("An error occurred! code=%d", 500)
	tinylog.Infof("Control bytes are hex encoded: %s", "bell\x07")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			tinylog.Infof("Goroutine started id=%d", id)
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			tinylog.Infof("Goroutine finished id=%d", id)
		}(i)
	}
	wg.Wait()

	stats := tinylog.Default().Stats()
	fmt.Printf("Emitted %d lines, %d truncated.\n", stats.Emitted, stats.Truncated)

	if err := tinylog.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	} else {
		fmt.Println("Logger shutdown complete.")
	}
}
