package scope

import (
	"github.com/google/uuid"

	"github.com/kolkov/dynhook/hook/arg"
)

// Location says when a callback fires relative to its scope's execution.
type Location uint8

const (
	// Before fires before the scope executes.
	Before Location = iota + 1
	// After fires after the scope executes (fall-through path).
	After
	// Anywhere lets the engine pick the cheapest point inside the scope.
	Anywhere
)

func (l Location) String() string {
	switch l {
	case Before:
		return "before"
	case After:
		return "after"
	case Anywhere:
		return "anywhere"
	default:
		return "invalid"
	}
}

// Valid reports whether l is one of Before, After or Anywhere.
func (l Location) Valid() bool {
	return l >= Before && l <= Anywhere
}

// Handle is the opaque context a callback is registered with. The engine
// passes it back to the entry point on every firing; the framework
// resolves it to the callback through a registry and a checked type
// assertion.
//
// The zero Handle refers to nothing.
type Handle struct {
	id uuid.UUID
}

// NewHandle returns a fresh, unique handle.
func NewHandle() Handle {
	return Handle{id: uuid.New()}
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.id == uuid.Nil }

func (h Handle) String() string { return h.id.String() }

// Flag is the continuation value an If entry returns. Non-zero lets the
// paired Then entry fire. Entries registered through other primitives
// return Proceed, and engines ignore it.
type Flag uint64

const (
	// Stop suppresses the paired Then entry.
	Stop Flag = 0
	// Proceed lets the paired Then entry fire.
	Proceed Flag = 1
)

// FlagOf converts a predicate result to a Flag.
func FlagOf(ok bool) Flag {
	if ok {
		return Proceed
	}
	return Stop
}

// Proceeds reports whether f lets the paired Then entry fire.
func (f Flag) Proceeds() bool { return f != Stop }

// Frame is what the engine hands an entry point on one firing.
type Frame struct {
	// Values holds one native value per extraction, in request order.
	Values []any
	// Extra holds the fixed extra arguments exactly as registered.
	Extra []any
}

// Entry is a dispatch entry point. Implementations are generated per
// callback arity and are safe for concurrent use.
type Entry func(ctx Handle, frame Frame) Flag

// Request is everything a registration primitive needs besides the entry
// and location.
type Request struct {
	// Context is passed back to the entry on every firing.
	Context Handle
	// Args lists one extraction per callback parameter, in order.
	Args []arg.Extraction
	// Extra holds the fixed extra arguments. Engines must not modify it.
	Extra []any
	// Site identifies where the registration was made (0 if not captured).
	Site uint64
}

// Scope is the capability surface an engine exposes for one granularity of
// code. The zero value of every implementation is its invalid sentinel and
// must report Valid() == false; implementations with pointer receivers must
// handle a nil receiver in Valid.
type Scope interface {
	Valid() bool
	InsertCall(loc Location, entry Entry, req Request) error
	InsertIfCall(loc Location, entry Entry, req Request) error
	InsertThenCall(loc Location, entry Entry, req Request) error
	InsertPredicatedCall(loc Location, entry Entry, req Request) error
}

// Invalid returns the invalid sentinel of scope type S.
func Invalid[S Scope]() S {
	var zero S
	return zero
}

// IsValid reports whether s is non-nil and valid.
func IsValid(s Scope) bool {
	return s != nil && s.Valid()
}
