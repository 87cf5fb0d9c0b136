package hooktest

import "github.com/kolkov/dynhook/hook/scope"

// base implements scope.Scope for every scope kind.
type base struct {
	e  *Engine
	pt Point
}

func (b base) scopeBase() base { return b }

// Valid reports whether the scope belongs to an engine.
func (b base) Valid() bool { return b.e != nil }

// Point returns the scope's identity.
func (b base) Point() Point { return b.pt }

func (b base) insert(p scope.Primitive, loc scope.Location, entry scope.Entry, req scope.Request) error {
	if b.e == nil {
		return ErrInvalidScope
	}
	return b.e.register(p, b.pt, loc, entry, req)
}

// InsertCall registers an unconditional call.
func (b base) InsertCall(loc scope.Location, entry scope.Entry, req scope.Request) error {
	return b.insert(scope.Plain, loc, entry, req)
}

// InsertIfCall registers an if call.
func (b base) InsertIfCall(loc scope.Location, entry scope.Entry, req scope.Request) error {
	return b.insert(scope.If, loc, entry, req)
}

// InsertThenCall registers a then call paired with the preceding if call.
func (b base) InsertThenCall(loc scope.Location, entry scope.Entry, req scope.Request) error {
	return b.insert(scope.Then, loc, entry, req)
}

// InsertPredicatedCall registers a predicated call.
func (b base) InsertPredicatedCall(loc scope.Location, entry scope.Entry, req scope.Request) error {
	return b.insert(scope.Predicated, loc, entry, req)
}

// Ins is an instruction scope. Ins{} is the invalid sentinel.
type Ins struct{ base }

// Bbl is a basic block scope. Bbl{} is the invalid sentinel.
type Bbl struct{ base }

// Trace is a trace scope. Trace{} is the invalid sentinel.
type Trace struct{ base }

// Routine is a routine scope. Routine{} is the invalid sentinel.
type Routine struct{ base }

var (
	_ scope.Scope = Ins{}
	_ scope.Scope = Bbl{}
	_ scope.Scope = Trace{}
	_ scope.Scope = Routine{}
)
