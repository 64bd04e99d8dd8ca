// FILE: lixenwraith/tinylog/integration_test.go
package tinylog

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var producerLine = regexp.MustCompile(`^\[INFO\]    producer=(\d+) seq=(\d+) pad=x+\n$`)

func TestConcurrentProducers(t *testing.T) {
	const (
		producers = 8
		perTask   = 200
	)

	for _, discipline := range []string{LockMutex, LockSemaphore} {
		t.Run(discipline, func(t *testing.T) {
			logger, rec := createTestLogger(t, func(b *Builder) {
				b.LockDiscipline(discipline).BufferSize(96)
			})

			var wg sync.WaitGroup
			for p := 0; p < producers; p++ {
				wg.Add(1)
				go func(id int) {
					defer wg.Done()
					for i := 0; i < perTask; i++ {
						logger.Infof("producer=%d seq=%d pad=%s", id, i, "xxxxxxxxxxxxxxxx")
					}
				}(p)
			}
			wg.Wait()

			lines := rec.Lines()
			require.Len(t, lines, producers*perTask)

			// Every line is whole and each producer's lines arrive in order
			next := make(map[int]int, producers)
			for _, line := range lines {
				m := producerLine.FindStringSubmatch(line)
				require.NotNil(t, m, "interleaved or damaged line: %q", line)
				id, _ := strconv.Atoi(m[1])
				seq, _ := strconv.Atoi(m[2])
				assert.Equal(t, next[id], seq)
				next[id] = seq + 1
			}
			for p := 0; p < producers; p++ {
				assert.Equal(t, perTask, next[p])
			}
		})
	}
}

func TestTimestampsNonDecreasing(t *testing.T) {
	var tick atomic.Uint64
	clock := func() uint64 { return tick.Add(1) }

	logger, rec := createTestLogger(t, func(b *Builder) {
		b.ShowTimestamp(true).Clock(clock)
	})

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				logger.Debugf("tick")
			}
		}()
	}
	wg.Wait()

	lines := rec.Lines()
	require.Len(t, lines, 400)
	for i, line := range lines {
		// The clock is read under the lock, so sink order matches clock order
		expected := fmt.Sprintf("%s[DEBUG]   tick\n", stamp(uint64(i+1)))
		assert.Equal(t, expected, line)
	}
}

func TestRuntimeLevelChangeUnderLoad(t *testing.T) {
	logger, rec := createTestLogger(t, func(b *Builder) { b.Level(LevelInfo) })

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				logger.Warnf("load")
			}
		}
	}()

	for i := 0; i < 100; i++ {
		logger.SetLevel(allLevels[i%len(allLevels)])
	}
	close(stop)
	wg.Wait()

	for _, line := range rec.Lines() {
		assert.Equal(t, "[WARNING] load\n", line)
	}
}

func stamp(ms uint64) string {
	return fmt.Sprintf("[%d:%02d:%02d.%03d] ", ms/3_600_000, (ms/60_000)%60, (ms%60_000)/1000, ms%1000)
}
