package lock

import (
	"sync"

	"github.com/kolkov/dynhook/internal/hook/owner"
)

// CurrentOwner returns an owner id for the calling goroutine. The id is
// stable for the goroutine's life and distinct from that of every other
// live goroutine.
func CurrentOwner() int64 {
	return owner.Current()
}

// OwnerLock is a lock that records which owner holds it. The owner that
// holds it may acquire it again without blocking; it is released when
// every acquisition has been matched by an Unlock.
//
// Owners are caller-chosen ids, typically CurrentOwner() or the thread id
// the engine passes to a handler.
//
// The zero OwnerLock is unlocked. It must not be copied after first use.
type OwnerLock struct {
	mu    sync.Mutex
	cond  sync.Cond
	owner int64
	depth int
}

func (l *OwnerLock) initLocked() {
	if l.cond.L == nil {
		l.cond.L = &l.mu
	}
}

// Lock blocks until l is free or already held by owner, then records owner
// as the holder.
func (l *OwnerLock) Lock(owner int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.initLocked()
	for l.depth > 0 && l.owner != owner {
		l.cond.Wait()
	}
	l.owner = owner
	l.depth++
}

// Unlock undoes one Lock. The owner is cleared when the last acquisition
// is undone. It panics with ErrNotHeld if l is not locked.
func (l *OwnerLock) Unlock() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.depth == 0 {
		panic(ErrNotHeld)
	}
	l.depth--
	if l.depth == 0 {
		l.owner = 0
		l.initLocked()
		l.cond.Broadcast()
	}
}

// Owner returns the current holder. The boolean is false if l is free.
func (l *OwnerLock) Owner() (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner, l.depth > 0
}

// OwnerGuard holds an OwnerLock on behalf of an owner.
//
// Unlike Guard it offers no try acquisition and no lock state query.
type OwnerGuard struct {
	l    *OwnerLock
	held bool
}

// NewOwnerGuard returns a guard over l that does not hold it yet.
func NewOwnerGuard(l *OwnerLock) *OwnerGuard {
	if l == nil {
		panic("lock: NewOwnerGuard(nil)")
	}
	return &OwnerGuard{l: l}
}

// AcquiredBy returns a guard that holds l on behalf of owner.
func AcquiredBy(l *OwnerLock, owner int64) *OwnerGuard {
	g := NewOwnerGuard(l)
	g.Acquire(owner)
	return g
}

// Acquire blocks until l is held on behalf of owner.
func (g *OwnerGuard) Acquire(owner int64) {
	if g.held {
		panic(ErrAlreadyHeld)
	}
	g.l.Lock(owner)
	g.held = true
}

// Release undoes the guard's acquisition. It panics with ErrNotHeld if the
// guard does not hold the lock.
func (g *OwnerGuard) Release() {
	if !g.held {
		panic(ErrNotHeld)
	}
	g.held = false
	g.l.Unlock()
}

// Close releases the lock if the guard holds it.
func (g *OwnerGuard) Close() {
	if g.held {
		g.Release()
	}
}
