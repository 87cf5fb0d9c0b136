package lock

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrNotHeld is the panic value for releasing a lock that is not held.
	ErrNotHeld = errors.New("lock: release of a lock that is not held")

	// ErrAlreadyHeld is the panic value for acquiring through a guard that
	// already holds its lock.
	ErrAlreadyHeld = errors.New("lock: guard already holds its lock")
)

// Locker is a lock a Guard can hold. *Mutex, *sync.Mutex and *RWMutex
// (for writing) implement it.
type Locker interface {
	Lock()
	TryLock() bool
	Unlock()
}

// Mutex is a mutual exclusion lock that knows whether it is held.
// The zero Mutex is unlocked.
//
// Mutex must not be copied after first use.
type Mutex struct {
	mu   sync.Mutex
	held atomic.Bool
}

// Lock blocks until m is acquired.
func (m *Mutex) Lock() {
	m.mu.Lock()
	m.held.Store(true)
}

// TryLock acquires m if it is free and reports whether it did.
func (m *Mutex) TryLock() bool {
	if !m.mu.TryLock() {
		return false
	}
	m.held.Store(true)
	return true
}

// Unlock releases m. It panics with ErrNotHeld if m is not locked.
func (m *Mutex) Unlock() {
	if !m.held.CompareAndSwap(true, false) {
		panic(ErrNotHeld)
	}
	m.mu.Unlock()
}

// IsLocked reports whether m is currently held by anyone. The answer may
// be stale by the time it is used; it is meant for assertions and
// diagnostics.
func (m *Mutex) IsLocked() bool {
	return m.held.Load()
}
