package callback

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/kolkov/dynhook/hook/arg"
	"github.com/kolkov/dynhook/hook/insert"
	"github.com/kolkov/dynhook/hook/scope"
	"github.com/kolkov/dynhook/internal/hook/config"
	"github.com/kolkov/dynhook/internal/hook/logging"
	"github.com/kolkov/dynhook/internal/hook/registry"
)

// Arity ceilings.
const (
	MaxArity            = 8
	MaxConditionalArity = 4
)

// Callback is implemented by every action callback (Callback0..Callback8).
type Callback interface {
	insert.Target

	// Insert registers the callback on obj through the plain primitive.
	Insert(loc scope.Location, obj scope.Scope, extra ...any) error

	// InsertPredicated registers the callback on obj through the
	// predicated primitive.
	InsertPredicated(loc scope.Location, obj scope.Scope, extra ...any) error

	// Guarded pairs the callback with cond.
	Guarded(cond Conditional) Guard

	// Retire ends the callback's registration.
	Retire() bool
}

// Conditional is implemented by every conditional callback
// (Conditional0..Conditional4). Conditionals are inserted through a Guard.
type Conditional interface {
	insert.Target

	// Retire ends the conditional's registration.
	Retire() bool

	conditional()
}

// target is the part shared by both families.
type target struct {
	handle scope.Handle
	entry  scope.Entry
	args   []arg.Extraction
}

func (t *target) init(self any, entry scope.Entry, args ...arg.Extraction) {
	t.entry = entry
	t.args = args
	t.handle = registry.Default.Register(self)
}

// Handle returns the handle the engine passes back on every firing.
func (t *target) Handle() scope.Handle { return t.handle }

// Entry returns the dispatch entry point.
func (t *target) Entry() scope.Entry { return t.entry }

// Extractions returns one extraction per handler parameter, in order.
func (t *target) Extractions() []arg.Extraction {
	return append([]arg.Extraction(nil), t.args...)
}

// Retire removes the callback from the handle registry. Registrations
// already made stay in the engine; their firings are dropped from now on.
// It reports whether the callback was live.
func (t *target) Retire() bool {
	return registry.Default.Retire(t.handle)
}

type action struct {
	target
}

// Insert registers the callback on obj at loc through the plain primitive.
//
// Parameters:
//   - loc: scope.Before, scope.After or scope.Anywhere
//   - obj: Scope to instrument (must be valid)
//   - extra: Up to arg.MaxExtra values passed unchanged to every firing
//
// Returns:
//   - error: *insert.Error for a rejected request, or the primitive's error
func (a *action) Insert(loc scope.Location, obj scope.Scope, extra ...any) error {
	return insert.Call(scope.Plain, &a.target, loc, obj, extra...)
}

// InsertPredicated is like Insert but registers through the predicated
// primitive: the callback fires only when the instruction's own predicate
// holds.
func (a *action) InsertPredicated(loc scope.Location, obj scope.Scope, extra ...any) error {
	return insert.Call(scope.Predicated, &a.target, loc, obj, extra...)
}

// Guarded returns a Guard that fires this callback only when cond proceeds.
func (a *action) Guarded(cond Conditional) Guard {
	return NewGuard(cond, a)
}

type condition struct {
	target
}

func (*condition) conditional() {}

// Sentinel errors carried by DispatchError.
var (
	// ErrRetired is reported when a retired handle fires.
	ErrRetired = errors.New("retired handle")
	// ErrHandleType is reported when a handle resolves to a callback of
	// another type than the entry point expects.
	ErrHandleType = errors.New("handle of another callback type")
	// ErrFrameShape is reported when a frame's value count does not match
	// the callback's arity.
	ErrFrameShape = errors.New("frame shape mismatch")
)

// DispatchError describes an engine contract violation found by an entry
// point. Entry points panic with it; recover and test with errors.Is.
type DispatchError struct {
	Handle scope.Handle
	Err    error
	Detail string
}

func (e *DispatchError) Error() string {
	msg := fmt.Sprintf("callback: dispatch on handle %s: %v", e.Handle, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *DispatchError) Unwrap() error { return e.Err }

// resolve recovers the callback of type C registered under ctx and checks
// that f carries arity values. The boolean is false for retired handles
// when the retired policy is to drop.
func resolve[C any](ctx scope.Handle, f scope.Frame, arity int) (C, bool) {
	var zero C
	v, ok := registry.Default.Lookup(ctx)
	if !ok {
		retired(ctx)
		return zero, false
	}
	c, ok := v.(C)
	if !ok {
		panic(&DispatchError{
			Handle: ctx,
			Err:    ErrHandleType,
			Detail: fmt.Sprintf("registered %T, entry expects %v", v, reflect.TypeFor[C]()),
		})
	}
	if len(f.Values) != arity {
		panic(&DispatchError{
			Handle: ctx,
			Err:    ErrFrameShape,
			Detail: fmt.Sprintf("frame has %d values, callback takes %d", len(f.Values), arity),
		})
	}
	return c, true
}

func retired(ctx scope.Handle) {
	if config.Current().Retired == config.RetiredPanic {
		panic(&DispatchError{Handle: ctx, Err: ErrRetired})
	}
	logging.L().Warning().
		Stringer("handle", ctx).
		Log("dynhook: retired handle fired, call dropped")
}

var (
	_ Callback    = (*Callback0)(nil)
	_ Callback    = (*Callback2[uintptr, arg.Address, uint64, arg.Value])(nil)
	_ Conditional = (*Conditional0)(nil)
	_ Conditional = (*Conditional1[bool, arg.Taken])(nil)
)
