package shared

import "sync"

// SlotLocker serializes writers per availability slot. Holding the slot
// key while rechecking capacity and inserting makes the
// check-then-create step atomic: two concurrent requests for the same
// (resource, date, hour) cell can never both observe free capacity.
//
// Locks are never evicted; the key space is bounded by the number of
// slots a venue can sell and each entry is one mutex.
type SlotLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSlotLocker() *SlotLocker {
	return &SlotLocker{locks: make(map[string]*sync.Mutex)}
}

// Acquire blocks until the key's lock is held and returns the release
// function.
func (l *SlotLocker) Acquire(key string) func() {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
