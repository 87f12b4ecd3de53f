// Package concurrency provides per-key mutual exclusion.
package concurrency

import "sync"

type keyLock struct {
	mu   sync.Mutex
	refs int // holders plus waiters; guarded by LockManager.mu
}

// LockManager serializes work per key. Entries exist only while some caller
// holds or waits on them, so the table stays proportional to contention
// rather than to the number of keys ever seen.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free and returns the matching unlock. Calling the
// returned func more than once panics like a double sync.Mutex unlock.
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	kl, ok := lm.locks[key]
	if !ok {
		kl = &keyLock{}
		lm.locks[key] = kl
	}
	kl.refs++
	lm.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()
		lm.mu.Lock()
		if kl.refs--; kl.refs == 0 {
			delete(lm.locks, key)
		}
		lm.mu.Unlock()
	}
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func()) {
	unlock := lm.Lock(key)
	defer unlock()
	fn()
}

// Len reports how many keys are currently held or waited on
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
