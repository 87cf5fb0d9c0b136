package lock

// Guard holds a Locker for the span of a block.
//
// Example:
//
//	g := lock.Acquired(&mu, true)
//	defer g.Close()
//
// Thread Safety: A Guard belongs to one goroutine; the lock it holds is
// what other goroutines contend on.
type Guard struct {
	l    Locker
	held bool
}

// NewGuard returns a guard over l that does not hold it yet.
func NewGuard(l Locker) *Guard {
	if l == nil {
		panic("lock: NewGuard(nil)")
	}
	return &Guard{l: l}
}

// Acquired returns a guard over l that has already tried to acquire it:
// blocking when block is true, otherwise with a single try. Check
// IsLocked after a non-blocking acquisition.
func Acquired(l Locker, block bool) *Guard {
	g := NewGuard(l)
	if block {
		g.Acquire()
	} else {
		g.TryAcquire()
	}
	return g
}

// Acquire blocks until the lock is held.
func (g *Guard) Acquire() {
	if g.held {
		panic(ErrAlreadyHeld)
	}
	g.l.Lock()
	g.held = true
}

// TryAcquire acquires the lock if it is free and reports whether it did.
func (g *Guard) TryAcquire() bool {
	if g.held {
		panic(ErrAlreadyHeld)
	}
	g.held = g.l.TryLock()
	return g.held
}

// Release releases the lock. It panics with ErrNotHeld if the guard does
// not hold it.
func (g *Guard) Release() {
	if !g.held {
		panic(ErrNotHeld)
	}
	g.held = false
	g.l.Unlock()
}

// IsLocked reports whether the guard holds its lock.
func (g *Guard) IsLocked() bool { return g.held }

// Close releases the lock if the guard holds it. It is meant for defer.
func (g *Guard) Close() {
	if g.held {
		g.Release()
	}
}
