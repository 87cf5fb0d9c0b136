package lock

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// blocked reports whether fn is still running after a short wait. fn is
// left running; it must finish once the test releases what it waits on.
func blocked(fn func()) (stillRunning bool, done <-chan struct{}) {
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		fn()
	}()
	select {
	case <-ch:
		return false, ch
	case <-time.After(50 * time.Millisecond):
		return true, ch
	}
}

// TestMutex_Basic verifies lock, try and is-locked semantics.
func TestMutex_Basic(t *testing.T) {
	var m Mutex
	assert.False(t, m.IsLocked())
	assert.True(t, m.TryLock())
	assert.True(t, m.IsLocked())
	assert.False(t, m.TryLock())
	m.Unlock()
	assert.False(t, m.IsLocked())

	m.Lock()
	assert.True(t, m.IsLocked())
	m.Unlock()
	assert.PanicsWithValue(t, ErrNotHeld, func() { m.Unlock() })
}

// TestGuard_Scoped verifies a guard acquires and releases on Close.
func TestGuard_Scoped(t *testing.T) {
	var m Mutex
	func() {
		g := Acquired(&m, true)
		defer g.Close()
		assert.True(t, g.IsLocked())
		assert.True(t, m.IsLocked())
	}()
	assert.False(t, m.IsLocked())
}

// TestGuard_Try verifies non-blocking acquisition on a held lock.
func TestGuard_Try(t *testing.T) {
	var m Mutex
	holder := Acquired(&m, true)

	g := Acquired(&m, false)
	assert.False(t, g.IsLocked())
	g.Close()

	holder.Release()
	assert.True(t, g.TryAcquire())
	assert.True(t, m.IsLocked())
	g.Close()
	assert.False(t, m.IsLocked())
}

// TestGuard_Misuse verifies double acquire and stray release panic.
func TestGuard_Misuse(t *testing.T) {
	var m Mutex
	g := NewGuard(&m)
	assert.False(t, g.IsLocked())
	assert.PanicsWithValue(t, ErrNotHeld, func() { g.Release() })

	g.Acquire()
	assert.PanicsWithValue(t, ErrAlreadyHeld, func() { g.Acquire() })
	assert.PanicsWithValue(t, ErrAlreadyHeld, func() { g.TryAcquire() })
	g.Release()
	assert.Panics(t, func() { NewGuard(nil) })
}

// TestGuard_SyncMutex verifies guards work over a standard mutex.
func TestGuard_SyncMutex(t *testing.T) {
	var mu sync.Mutex
	g := Acquired(&mu, true)
	assert.False(t, mu.TryLock())
	g.Close()
	assert.True(t, mu.TryLock())
	mu.Unlock()
}

// TestGuard_Blocks verifies a blocking acquisition waits for release.
func TestGuard_Blocks(t *testing.T) {
	var m Mutex
	holder := Acquired(&m, true)

	var waiter *Guard
	running, done := blocked(func() { waiter = Acquired(&m, true) })
	require.True(t, running, "acquisition must block while held")

	holder.Release()
	<-done
	assert.True(t, waiter.IsLocked())
	waiter.Close()
}

// TestMutex_Exclusion verifies counters stay consistent under contention.
func TestMutex_Exclusion(t *testing.T) {
	var m Mutex
	var inside atomic.Int32
	counter := 0

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 500; j++ {
				guard := Acquired(&m, true)
				if inside.Add(1) != 1 {
					guard.Close()
					return errors.New("two holders at once")
				}
				counter++
				inside.Add(-1)
				guard.Close()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 8*500, counter)
}

// TestOwnerLock_Recursive verifies the same owner may re-acquire.
func TestOwnerLock_Recursive(t *testing.T) {
	var l OwnerLock
	_, held := l.Owner()
	assert.False(t, held)

	l.Lock(7)
	l.Lock(7)
	o, held := l.Owner()
	assert.True(t, held)
	assert.Equal(t, int64(7), o)

	l.Unlock()
	_, held = l.Owner()
	assert.True(t, held, "one acquisition remains")
	l.Unlock()
	_, held = l.Owner()
	assert.False(t, held)
	assert.PanicsWithValue(t, ErrNotHeld, func() { l.Unlock() })
}

// TestOwnerLock_OtherOwnerBlocks verifies mutual exclusion across owners.
func TestOwnerLock_OtherOwnerBlocks(t *testing.T) {
	var l OwnerLock
	g := AcquiredBy(&l, 1)

	running, done := blocked(func() { l.Lock(2) })
	require.True(t, running, "owner 2 must wait for owner 1")

	g.Close()
	<-done
	o, held := l.Owner()
	assert.True(t, held)
	assert.Equal(t, int64(2), o)
	l.Unlock()
}

// TestOwnerLock_Exclusion verifies owners never overlap.
func TestOwnerLock_Exclusion(t *testing.T) {
	var l OwnerLock
	var inside atomic.Int32

	var g errgroup.Group
	for i := 1; i <= 8; i++ {
		g.Go(func() error {
			me := CurrentOwner()
			for j := 0; j < 200; j++ {
				guard := AcquiredBy(&l, me)
				// Re-entry by the same owner must not block.
				inner := AcquiredBy(&l, me)
				if inside.Add(1) != 1 {
					return errors.New("two owners at once")
				}
				inside.Add(-1)
				inner.Close()
				guard.Close()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestOwnerGuard_Misuse verifies guard misuse panics.
func TestOwnerGuard_Misuse(t *testing.T) {
	var l OwnerLock
	g := NewOwnerGuard(&l)
	assert.PanicsWithValue(t, ErrNotHeld, func() { g.Release() })
	g.Acquire(3)
	assert.PanicsWithValue(t, ErrAlreadyHeld, func() { g.Acquire(3) })
	g.Close()
	g.Close()
	_, held := l.Owner()
	assert.False(t, held)
	assert.Panics(t, func() { NewOwnerGuard(nil) })
}

// TestCurrentOwner verifies owner ids differ between goroutines.
func TestCurrentOwner(t *testing.T) {
	me := CurrentOwner()
	assert.Equal(t, me, CurrentOwner())

	other := make(chan int64)
	go func() { other <- CurrentOwner() }()
	assert.NotEqual(t, me, <-other)
}

// TestRWMutex_Readers verifies many readers may hold the lock together.
func TestRWMutex_Readers(t *testing.T) {
	var rw RWMutex
	r1 := ReadAcquired(&rw, true)
	r2 := ReadAcquired(&rw, false)
	assert.True(t, r1.IsLocked())
	assert.True(t, r2.IsLocked())
	assert.True(t, rw.IsReadLocked())
	assert.False(t, rw.IsLocked())

	w := WriteAcquired(&rw, false)
	assert.False(t, w.IsLocked(), "writer must not enter while readers hold")

	r1.Close()
	r2.Close()
	assert.False(t, rw.IsReadLocked())
	assert.True(t, w.TryAcquire())
	w.Close()
}

// TestRWMutex_Writer verifies a writer excludes readers and writers.
func TestRWMutex_Writer(t *testing.T) {
	var rw RWMutex
	w := WriteAcquired(&rw, true)
	assert.True(t, rw.IsLocked())

	assert.False(t, ReadAcquired(&rw, false).IsLocked())
	assert.False(t, WriteAcquired(&rw, false).IsLocked())

	var r *ReadGuard
	running, done := blocked(func() { r = ReadAcquired(&rw, true) })
	require.True(t, running, "reader must wait for the writer")
	w.Release()
	<-done
	assert.True(t, r.IsLocked())
	r.Close()
	assert.False(t, rw.IsReadLocked())
}

// TestRWMutex_Misuse verifies stray unlocks panic.
func TestRWMutex_Misuse(t *testing.T) {
	var rw RWMutex
	assert.PanicsWithValue(t, ErrNotHeld, func() { rw.Unlock() })
	assert.PanicsWithValue(t, ErrNotHeld, func() { rw.RUnlock() })
	assert.PanicsWithValue(t, ErrNotHeld, func() { NewReadGuard(&rw).Release() })
	assert.PanicsWithValue(t, ErrNotHeld, func() { NewWriteGuard(&rw).Release() })
}
