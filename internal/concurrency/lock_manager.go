// Package concurrency provides per-key mutual exclusion for save slots.
package concurrency

import "sync"

type slotLock struct {
	mu      sync.Mutex
	holders int
}

// LockManager serializes work per key. An entry lives only while some caller
// holds or waits on it, so arbitrary slot names do not accumulate.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*slotLock
}

func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*slotLock)}
}

func (lm *LockManager) acquire(key string) *slotLock {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &slotLock{}
		lm.locks[key] = l
	}
	l.holders++
	lm.mu.Unlock()

	l.mu.Lock()
	return l
}

func (lm *LockManager) release(key string, l *slotLock) {
	l.mu.Unlock()

	lm.mu.Lock()
	l.holders--
	if l.holders == 0 {
		delete(lm.locks, key)
	}
	lm.mu.Unlock()
}

// WithLock runs fn while holding the key's lock and returns fn's error
func (lm *LockManager) WithLock(key string, fn func() error) error {
	l := lm.acquire(key)
	defer lm.release(key, l)
	return fn()
}

// Held reports how many keys currently have a holder or waiter
func (lm *LockManager) Held() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
