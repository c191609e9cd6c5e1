package services

import "sync"

// keyedLocks serializes work per string key. Submission holds the lock for
// its (contract, component) pair across read-history, validate and append,
// so two concurrent submissions cannot both observe the same stale state.
// Locks are never evicted; the key space is bounded by contracts seen by
// this process.
type keyedLocks struct {
	locks sync.Map
}

func (l *keyedLocks) Lock(key string) (unlock func()) {
	v, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
