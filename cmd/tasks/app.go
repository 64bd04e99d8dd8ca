package main

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/tinylog"
)

// App runs the three board tasks against one logger
type App struct {
	logger *tinylog.Logger
	board  *Board
	start  time.Time

	blinkPeriod  time.Duration
	uptimePeriod time.Duration
	scanPeriod   time.Duration
}

// NewApp creates the task set with the board's native periods, uptime counts from boot
func NewApp(logger *tinylog.Logger, board *Board, boot time.Time) *App {
	return &App{
		logger:       logger,
		board:        board,
		start:        boot,
		blinkPeriod:  time.Second,
		uptimePeriod: time.Second,
		scanPeriod:   10 * time.Millisecond,
	}
}

// Run starts all tasks and blocks until ctx is done or a task fails
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.blink(ctx) })
	g.Go(func() error { return a.uptime(ctx) })
	g.Go(func() error { return a.scanKeys(ctx) })
	return g.Wait()
}

// blink toggles the two LEDs in opposite phase
func (a *App) blink(ctx context.Context) error {
	led0, led1 := false, true
	ticker := time.NewTicker(a.blinkPeriod)
	defer ticker.Stop()

	for {
		if err := a.board.LED0.Set(led0); err != nil {
			a.logger.Errorf("LED0 write failed: %v", err)
		}
		if err := a.board.LED1.Set(led1); err != nil {
			a.logger.Errorf("LED1 write failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			led0, led1 = !led0, !led1
		}
	}
}

// uptime reports the running time once per period
func (a *App) uptime(ctx context.Context) error {
	ticker := time.NewTicker(a.uptimePeriod)
	defer ticker.Stop()

	for {
		a.logger.Infof("Running time: %d ms.", time.Since(a.start).Milliseconds())

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// scanKeys polls the keypad and reacts once per press
func (a *App) scanKeys(ctx context.Context) error {
	ticker := time.NewTicker(a.scanPeriod)
	defer ticker.Stop()

	last := KeyNone
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		key := a.board.Keys.Pressed()
		if key != last && key != KeyNone {
			a.handleKey(key)
		}
		last = key
	}
}

// handleKey applies the action bound to a key
func (a *App) handleKey(key Key) {
	switch key {
	case KeyWKUP:
		a.logger.Infof("WKUP pressed, set log level to FATAL.")
		a.logger.SetLevel(tinylog.LevelFatal)
	case Key0:
		a.logger.SetLevel(tinylog.LevelInfo)
		a.logger.Infof("KEY0 pressed, set log level to INFO.")
	case Key1:
		a.logger.Warnf("KEY1 pressed!")
	case Key2:
		a.logger.Fatalf("KEY2 pressed!")
	}
}
