package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Mutexes are never released, so
// keys should come from a bounded set such as user ids.
type LockManager[K comparable] struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager[K comparable]() *LockManager[K] {
	return &LockManager[K]{}
}

// GetLock returns the mutex for key
func (lm *LockManager[K]) GetLock(key K) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns its unlock function
func (lm *LockManager[K]) Lock(key K) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}
