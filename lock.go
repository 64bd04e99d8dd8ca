// FILE: lixenwraith/tinylog/lock.go
package tinylog

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// semaphoreLock is a binary signal. It tracks no owner, any goroutine may release it,
// and blocked acquirers are served in arrival order.
type semaphoreLock struct {
	sem *semaphore.Weighted
}

func newSemaphoreLock() *semaphoreLock {
	return &semaphoreLock{sem: semaphore.NewWeighted(1)}
}

// Lock waits without a deadline
func (s *semaphoreLock) Lock() {
	// Acquire only fails on context cancellation
	_ = s.sem.Acquire(context.Background(), 1)
}

func (s *semaphoreLock) Unlock() {
	s.sem.Release(1)
}

// TryLock acquires the signal if it is free, mirroring sync.Mutex.TryLock so both disciplines expose it
func (s *semaphoreLock) TryLock() bool {
	return s.sem.TryAcquire(1)
}

// newLocker returns the exclusion primitive for a lock discipline
func newLocker(discipline string) sync.Locker {
	switch discipline {
	case LockSemaphore:
		return newSemaphoreLock()
	default:
		return &sync.Mutex{}
	}
}
