package insert

import (
	"errors"
	"fmt"

	"github.com/kolkov/dynhook/hook/scope"
)

// Sentinel errors for rejected registrations. Test with errors.Is.
var (
	ErrInvalidScope      = errors.New("invalid scope")
	ErrInvalidLocation   = errors.New("invalid location")
	ErrTooManyExtra      = errors.New("too many extra arguments")
	ErrInvalidExtraction = errors.New("invalid extraction")
	ErrInvalidPrimitive  = errors.New("invalid primitive")
)

// Error describes a rejected registration.
//
// Fields:
//   - Primitive: Registration primitive that was requested
//   - Location: Requested location
//   - Scope: Dynamic type of the scope (e.g. "*hooktest.Ins")
//   - Err: Underlying sentinel, possibly wrapped with detail
//   - Suggestion: Optional hint for fixing the call
//
// Example output:
//
//	insert then call after on hooktest.Bbl: invalid scope
//
//	Suggestion: the scope is the invalid sentinel; check the engine lookup that produced it
//
// Thread Safety: Immutable after creation, safe for concurrent use.
type Error struct {
	Primitive  scope.Primitive
	Location   scope.Location
	Scope      string
	Err        error
	Suggestion string
}

// Error implements the error interface.
func (e *Error) Error() string {
	result := fmt.Sprintf("insert %s call %s on %s: %v", e.Primitive, e.Location, e.Scope, e.Err)
	if e.Suggestion != "" {
		result += "\n\nSuggestion: " + e.Suggestion
	}
	return result
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

func newError(p scope.Primitive, loc scope.Location, obj scope.Scope, err error) *Error {
	e := &Error{
		Primitive: p,
		Location:  loc,
		Scope:     fmt.Sprintf("%T", obj),
		Err:       err,
	}
	switch {
	case errors.Is(err, ErrInvalidScope):
		e.Suggestion = "the scope is nil or the invalid sentinel; check the engine lookup that produced it"
	case errors.Is(err, ErrTooManyExtra):
		e.Suggestion = "pack the extra values into a single struct"
	case errors.Is(err, ErrInvalidLocation):
		e.Suggestion = "use scope.Before, scope.After or scope.Anywhere"
	}
	return e
}
