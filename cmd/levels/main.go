package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tinylog"
)

// Simulate rapid threshold changes on the default logger while a producer logs at every level
func main() {
	var attempted atomic.Int64

	if err := tinylog.Init(tinylog.LevelDebug); err != nil {
		fmt.Printf("Init error: %v\n", err)
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			level := tinylog.Level(i % 5)
			tinylog.Log(level, "producer i=%d level=%s threshold=%s", i, level, tinylog.GetLevel())
			attempted.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	for _, level := range []tinylog.Level{
		tinylog.LevelInfo, tinylog.LevelWarning, tinylog.LevelError, tinylog.LevelFatal,
		tinylog.Level(9), // Ignored
		tinylog.LevelDebug,
	} {
		tinylog.SetLevel(level)
		fmt.Printf("SetLevel(%d) -> threshold %s\n", level, tinylog.GetLevel())
		time.Sleep(10 * time.Millisecond)
	}

	close(stop)
	<-done

	stats := tinylog.Default().Stats()
	fmt.Printf("Total logs attempted: %d, emitted: %d\n", attempted.Load(), stats.Emitted)

	if err := tinylog.Shutdown(); err != nil {
		fmt.Printf("Shutdown error: %v\n", err)
	}
}
