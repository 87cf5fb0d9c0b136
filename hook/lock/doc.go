// Package lock provides scoped locks for state shared between analysis
// handlers.
//
// Handlers fire concurrently from whatever goroutines the engine runs the
// instrumented program on. Three lock kinds cover the usual needs:
//
//   - Mutex: a plain mutual exclusion lock that can report whether it is
//     held. Guard holds any Locker for the span of a block.
//   - OwnerLock: a lock that records its owner and lets that owner acquire
//     it again without blocking (recursive). OwnerGuard holds it.
//   - RWMutex: many readers or one writer, held through ReadGuard and
//     WriteGuard.
//
// A guard is acquired when built with Acquired, AcquiredBy, ReadAcquired
// or WriteAcquired, and released by Close, so the usual shape is:
//
//	g := lock.Acquired(&mu, true)
//	defer g.Close()
//
// Releasing a lock that is not held is a programming error; it panics with
// an error wrapping ErrNotHeld.
package lock
