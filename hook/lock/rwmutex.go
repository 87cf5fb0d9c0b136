package lock

import (
	"sync"
	"sync/atomic"
)

// RWMutex is a reader/writer lock: many readers or one writer. It knows
// whether it is held. The zero RWMutex is unlocked.
//
// RWMutex must not be copied after first use.
type RWMutex struct {
	mu      sync.RWMutex
	readers atomic.Int32
	writer  atomic.Bool
}

// Lock blocks until rw is held for writing.
func (rw *RWMutex) Lock() {
	rw.mu.Lock()
	rw.writer.Store(true)
}

// TryLock acquires rw for writing if it is free and reports whether it did.
func (rw *RWMutex) TryLock() bool {
	if !rw.mu.TryLock() {
		return false
	}
	rw.writer.Store(true)
	return true
}

// Unlock releases the write lock. It panics with ErrNotHeld if rw is not
// write locked.
func (rw *RWMutex) Unlock() {
	if !rw.writer.CompareAndSwap(true, false) {
		panic(ErrNotHeld)
	}
	rw.mu.Unlock()
}

// RLock blocks until rw is held for reading.
func (rw *RWMutex) RLock() {
	rw.mu.RLock()
	rw.readers.Add(1)
}

// TryRLock acquires rw for reading if no writer holds it and reports
// whether it did.
func (rw *RWMutex) TryRLock() bool {
	if !rw.mu.TryRLock() {
		return false
	}
	rw.readers.Add(1)
	return true
}

// RUnlock releases one read lock. It panics with ErrNotHeld if rw is not
// read locked.
func (rw *RWMutex) RUnlock() {
	for {
		n := rw.readers.Load()
		if n <= 0 {
			panic(ErrNotHeld)
		}
		if rw.readers.CompareAndSwap(n, n-1) {
			break
		}
	}
	rw.mu.RUnlock()
}

// IsLocked reports whether a writer holds rw.
func (rw *RWMutex) IsLocked() bool { return rw.writer.Load() }

// IsReadLocked reports whether at least one reader holds rw.
func (rw *RWMutex) IsReadLocked() bool { return rw.readers.Load() > 0 }

// RLocker returns a Locker whose Lock and Unlock take and release the read
// lock.
func (rw *RWMutex) RLocker() Locker { return readLocker{rw} }

type readLocker struct{ rw *RWMutex }

func (r readLocker) Lock()         { r.rw.RLock() }
func (r readLocker) TryLock() bool { return r.rw.TryRLock() }
func (r readLocker) Unlock()       { r.rw.RUnlock() }

// ReadGuard holds an RWMutex for reading.
type ReadGuard struct {
	Guard
}

// NewReadGuard returns a read guard over rw that does not hold it yet.
func NewReadGuard(rw *RWMutex) *ReadGuard {
	return &ReadGuard{Guard{l: rw.RLocker()}}
}

// ReadAcquired returns a read guard that has already tried to acquire rw,
// blocking when block is true.
func ReadAcquired(rw *RWMutex, block bool) *ReadGuard {
	g := NewReadGuard(rw)
	if block {
		g.Acquire()
	} else {
		g.TryAcquire()
	}
	return g
}

// WriteGuard holds an RWMutex for writing.
type WriteGuard struct {
	Guard
}

// NewWriteGuard returns a write guard over rw that does not hold it yet.
func NewWriteGuard(rw *RWMutex) *WriteGuard {
	return &WriteGuard{Guard{l: rw}}
}

// WriteAcquired returns a write guard that has already tried to acquire
// rw, blocking when block is true.
func WriteAcquired(rw *RWMutex, block bool) *WriteGuard {
	g := NewWriteGuard(rw)
	if block {
		g.Acquire()
	} else {
		g.TryAcquire()
	}
	return g
}

var (
	_ Locker = (*Mutex)(nil)
	_ Locker = (*sync.Mutex)(nil)
	_ Locker = (*RWMutex)(nil)
)
