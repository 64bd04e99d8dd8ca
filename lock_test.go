// FILE: lixenwraith/tinylog/lock_test.go
package tinylog

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocker(t *testing.T) {
	assert.IsType(t, &sync.Mutex{}, newLocker(LockMutex))
	assert.IsType(t, &semaphoreLock{}, newLocker(LockSemaphore))
}

func TestLockerTryLock(t *testing.T) {
	type tryLocker interface {
		sync.Locker
		TryLock() bool
	}

	for _, discipline := range []string{LockMutex, LockSemaphore} {
		t.Run(discipline, func(t *testing.T) {
			lk, ok := newLocker(discipline).(tryLocker)
			require.True(t, ok)

			lk.Lock()
			assert.False(t, lk.TryLock())
			lk.Unlock()
			assert.True(t, lk.TryLock())
			lk.Unlock()
		})
	}
}

func TestSemaphoreLock(t *testing.T) {
	t.Run("exclusive", func(t *testing.T) {
		s := newSemaphoreLock()
		s.Lock()
		assert.False(t, s.TryLock())
		s.Unlock()
		assert.True(t, s.TryLock())
		s.Unlock()
	})

	t.Run("released by another goroutine", func(t *testing.T) {
		s := newSemaphoreLock()
		s.Lock()

		done := make(chan struct{})
		go func() {
			s.Unlock()
			close(done)
		}()
		<-done

		assert.True(t, s.TryLock())
		s.Unlock()
	})

	t.Run("waiter blocks until release", func(t *testing.T) {
		s := newSemaphoreLock()
		s.Lock()

		acquired := make(chan struct{})
		go func() {
			s.Lock()
			close(acquired)
		}()

		select {
		case <-acquired:
			t.Fatal("second Lock returned while held")
		case <-time.After(20 * time.Millisecond):
		}

		s.Unlock()
		select {
		case <-acquired:
		case <-time.After(time.Second):
			t.Fatal("waiter not released")
		}
		s.Unlock()
	})

	t.Run("counter protected", func(t *testing.T) {
		s := newSemaphoreLock()
		counter := 0

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 500; j++ {
					s.Lock()
					counter++
					s.Unlock()
				}
			}()
		}
		wg.Wait()
		require.Equal(t, 16*500, counter)
	})
}
