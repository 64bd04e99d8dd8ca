// Command tasks runs the blink, uptime and key-scan tasks of the demo board.
//
// Configuration is read from the TOML file named by TASKS_CONFIG (default tasks.toml,
// section [tinylog]) with command-line overrides, after loading .env if present.
// Set TASKS_SIMULATE=1 to use stdin as keypad (w, 0, 1, 2) instead of GPIO.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/tinylog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tasks: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Environment file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	configPath := envOr("TASKS_CONFIG", "tasks.toml")
	cfg, err := tinylog.NewConfigFromFile(configPath, os.Args[1:])
	if err != nil {
		return err
	}

	// Stamps and the uptime task share one boot epoch
	boot := time.Now()
	logger, err := tinylog.NewBuilder().Config(cfg).Clock(tinylog.SinceClock(boot)).Build()
	if err != nil {
		return err
	}
	defer logger.Shutdown()

	board, err := openBoard()
	if err != nil {
		return err
	}
	defer board.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewApp(logger, board, boot).Run(ctx)
}

// openBoard returns GPIO hardware, or the simulated board when requested or when GPIO is unavailable
func openBoard() (*Board, error) {
	if os.Getenv("TASKS_SIMULATE") == "1" {
		return newSimulatedBoard(os.Stdin), nil
	}

	pins := defaultPins
	pins.LED0 = envOr("TASKS_PIN_LED0", pins.LED0)
	pins.LED1 = envOr("TASKS_PIN_LED1", pins.LED1)
	pins.Key0 = envOr("TASKS_PIN_KEY0", pins.Key0)
	pins.Key1 = envOr("TASKS_PIN_KEY1", pins.Key1)
	pins.Key2 = envOr("TASKS_PIN_KEY2", pins.Key2)
	pins.WKUP = envOr("TASKS_PIN_WKUP", pins.WKUP)

	board, err := openGPIOBoard(pins)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tasks: %v, using simulated board\n", err)
		return newSimulatedBoard(os.Stdin), nil
	}
	return board, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
