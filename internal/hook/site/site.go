// Package site records where hooks were registered.
//
// A registration site is the call stack of the goroutine that inserted a
// callback. Sites are stored once per unique stack and referenced by a
// 64-bit hash, so tools that insert the same callback from the same place
// thousands of times (once per instrumented instruction) keep one copy.
//
// Design:
//   - Fixed-size stack traces (MaxFrames frames)
//   - Hash-based deduplication (FNV-1a)
//   - Global sync.Map storage (thread-safe)
//
// Usage:
//
//	id := site.Capture(1)       // skip the caller's own frame
//	trace := site.Lookup(id)
//	fmt.Print(trace.Format())
package site

import (
	"fmt"
	"hash/fnv"
	"runtime"
	"strings"
	"sync"
	"unsafe"
)

const (
	// MaxFrames is the maximum number of stack frames kept per site.
	MaxFrames = 8

	// frameworkPrefix identifies frames that belong to the framework itself.
	frameworkPrefix = "github.com/kolkov/dynhook/"
)

// Trace is a captured registration stack.
type Trace struct {
	PC [MaxFrames]uintptr
}

// depot maps a stack hash to its *Trace.
var depot sync.Map

// Capture records the current stack and returns its hash.
//
// Parameters:
//   - skip: number of additional frames to drop above Capture's caller
//
// Returns:
//   - uint64: Site identifier (0 if no stack is available)
//
// Thread Safety: Safe for concurrent calls.
func Capture(skip int) uint64 {
	var pcs [MaxFrames]uintptr
	// Skip runtime.Callers and Capture itself.
	n := runtime.Callers(2+skip, pcs[:])
	if n == 0 {
		return 0
	}

	hash := hashStack(pcs[:n])
	if _, exists := depot.Load(hash); exists {
		return hash
	}
	depot.Store(hash, &Trace{PC: pcs})
	return hash
}

// Lookup returns the trace stored under id, or nil if none.
func Lookup(id uint64) *Trace {
	if id == 0 {
		return nil
	}
	val, ok := depot.Load(id)
	if !ok {
		return nil
	}
	return val.(*Trace)
}

func hashStack(pcs []uintptr) uint64 {
	h := fnv.New64a()
	for _, pc := range pcs {
		//nolint:gosec // G103: reading the PC value as bytes for hashing
		_, _ = h.Write((*[8]byte)(unsafe.Pointer(&pc))[:])
	}
	return h.Sum64()
}

// Caller returns "function file:line" for the first frame outside the
// framework, which is where a tool inserted its callback. It returns
// "<unknown>" if there is no such frame.
func (t *Trace) Caller() string {
	if t == nil {
		return "<unknown>"
	}
	frames := runtime.CallersFrames(t.PC[:])
	for {
		frame, more := frames.Next()
		if frame.PC == 0 {
			break
		}
		if !isInternal(frame.Function) {
			return fmt.Sprintf("%s %s:%d", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return "<unknown>"
}

// Format renders the trace in the layout of a Go stack dump, without
// runtime frames.
func (t *Trace) Format() string {
	if t == nil {
		return "  <unknown>\n"
	}

	frames := runtime.CallersFrames(t.PC[:])
	var buf strings.Builder
	for {
		frame, more := frames.Next()
		if frame.PC == 0 {
			break
		}
		if !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&buf, "  %s()\n", frame.Function)
			fmt.Fprintf(&buf, "      %s:%d\n", frame.File, frame.Line)
		}
		if !more {
			break
		}
	}

	if buf.Len() == 0 {
		return "  <runtime internal>\n"
	}
	return buf.String()
}

// isInternal reports whether fn is a framework function (tests excluded).
func isInternal(fn string) bool {
	if strings.HasPrefix(fn, "runtime.") {
		return true
	}
	if !strings.HasPrefix(fn, frameworkPrefix) {
		return false
	}
	// Example and test packages are callers, not framework.
	rest := fn[len(frameworkPrefix):]
	return !strings.HasPrefix(rest, "examples/") && !strings.Contains(rest, "_test.")
}

// Reset clears the depot. Intended for tests.
//
// Thread Safety: NOT safe for concurrent calls.
func Reset() {
	depot = sync.Map{}
}

// Count returns the number of unique sites stored.
//
// Performance: O(N), do not call on a hot path.
func Count() int {
	n := 0
	depot.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
