package hooktest

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/kolkov/dynhook/hook"
	"github.com/kolkov/dynhook/hook/arg"
	"github.com/kolkov/dynhook/hook/scope"
)

// Errors returned by the engine.
var (
	ErrUnpairedThen  = errors.New("then call without preceding if call")
	ErrMissingValue  = errors.New("no value for extraction")
	ErrForeignScope  = errors.New("scope belongs to another engine")
	ErrUnknownScope  = errors.New("scope is not a hooktest scope")
	ErrInvalidScope  = errors.New("invalid scope")
	ErrLocationFired = errors.New("cannot fire anywhere; fire before or after")
)

// Kind names a scope granularity.
type Kind uint8

const (
	KindIns Kind = iota + 1
	KindBbl
	KindTrace
	KindRoutine
)

func (k Kind) String() string {
	switch k {
	case KindIns:
		return "ins"
	case KindBbl:
		return "bbl"
	case KindTrace:
		return "trace"
	case KindRoutine:
		return "rtn"
	default:
		return "invalid"
	}
}

// Point identifies one scope of one engine.
type Point struct {
	Kind Kind
	Key  string
}

func (p Point) String() string { return p.Kind.String() + ":" + p.Key }

// Registration is one recorded primitive call.
type Registration struct {
	Primitive scope.Primitive
	Point     Point
	Location  scope.Location
	Entry     scope.Entry
	Request   scope.Request
}

// Event supplies the runtime values of one firing.
type Event struct {
	// Values holds the value of each extraction kind, keyed by kind.
	Values map[arg.Kind]any
	// Args holds routine call arguments, indexed by the operand of
	// arg.KindFuncArgEntry extractions.
	Args []any
}

// value returns the native value of x for ev.
func (ev Event) value(x arg.Extraction) (any, error) {
	switch x.Kind {
	case arg.KindConst:
		return x.Operand, nil
	case arg.KindFuncArgEntry:
		n, ok := x.Operand.(int)
		if !ok || n < 0 || n >= len(ev.Args) {
			return nil, fmt.Errorf("%w: %s operand %v", ErrMissingValue, x.Kind, x.Operand)
		}
		return ev.Args[n], nil
	}
	v, ok := ev.Values[x.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingValue, x.Kind)
	}
	return v, nil
}

// Option configures an Engine.
type Option func(*Engine)

// WithAPIVersion sets the engine API version the engine announces.
func WithAPIVersion(v string) Option {
	return func(e *Engine) { e.version = v }
}

// Engine is a simulated instrumentation engine.
//
// Thread Safety: Registrations are serialized by an internal mutex. Fire
// may be called concurrently; entries run without the mutex held.
type Engine struct {
	mu         sync.Mutex
	version    string
	regs       []Registration
	predicates map[Point]bool
}

// NewEngine creates an engine. It fails if the engine API version is not
// accepted by hook.CheckEngine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		version:    hook.EngineAPI,
		predicates: make(map[Point]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := hook.CheckEngine(e.version); err != nil {
		return nil, err
	}
	return e, nil
}

// MustNewEngine is like NewEngine but panics on error.
func MustNewEngine(opts ...Option) *Engine {
	e, err := NewEngine(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// APIVersion returns the engine API version the engine announces.
func (e *Engine) APIVersion() string { return e.version }

// Ins returns the instruction scope at addr.
func (e *Engine) Ins(addr uint64) Ins { return Ins{e.base(KindIns, addr)} }

// Bbl returns the basic block scope starting at addr.
func (e *Engine) Bbl(addr uint64) Bbl { return Bbl{e.base(KindBbl, addr)} }

// Trace returns the trace scope starting at addr.
func (e *Engine) Trace(addr uint64) Trace { return Trace{e.base(KindTrace, addr)} }

// Routine returns the routine scope named name.
func (e *Engine) Routine(name string) Routine {
	return Routine{base{e: e, pt: Point{Kind: KindRoutine, Key: name}}}
}

func (e *Engine) base(k Kind, addr uint64) base {
	return base{e: e, pt: Point{Kind: k, Key: fmt.Sprintf("%#x", addr)}}
}

// SetPredicate sets the predicate of obj's scope, consulted by predicated
// registrations.
func (e *Engine) SetPredicate(obj scope.Scope, holds bool) error {
	pt, err := e.point(obj)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.predicates[pt] = holds
	e.mu.Unlock()
	return nil
}

// Registrations returns a copy of all registrations in registration order.
func (e *Engine) Registrations() []Registration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.regs)
}

// Reset drops all registrations and predicates.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.regs = nil
	e.predicates = make(map[Point]bool)
}

func (e *Engine) point(obj scope.Scope) (Point, error) {
	s, ok := obj.(interface{ scopeBase() base })
	if !ok {
		return Point{}, fmt.Errorf("%w: %T", ErrUnknownScope, obj)
	}
	b := s.scopeBase()
	if b.e == nil {
		return Point{}, ErrInvalidScope
	}
	if b.e != e {
		return Point{}, ErrForeignScope
	}
	return b.pt, nil
}

func (e *Engine) register(p scope.Primitive, pt Point, loc scope.Location, entry scope.Entry, req scope.Request) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if p == scope.Then && !e.pendingIf(pt, loc) {
		return fmt.Errorf("%w at %s %s", ErrUnpairedThen, pt, loc)
	}
	e.regs = append(e.regs, Registration{
		Primitive: p,
		Point:     pt,
		Location:  loc,
		Entry:     entry,
		Request:   req,
	})
	return nil
}

// pendingIf reports whether the last registration at pt and loc is an if
// registration. Callers hold e.mu.
func (e *Engine) pendingIf(pt Point, loc scope.Location) bool {
	for i := len(e.regs) - 1; i >= 0; i-- {
		r := e.regs[i]
		if r.Point == pt && r.Location == loc {
			return r.Primitive == scope.If
		}
	}
	return false
}

// Fire fires the registrations of obj at loc with the values of ev.
// Firing Before also fires Anywhere registrations.
//
// Returns:
//   - int: Number of entries invoked (if entries included)
//   - error: Invalid scope or location, or a value ev does not supply
func (e *Engine) Fire(obj scope.Scope, loc scope.Location, ev Event) (int, error) {
	pt, err := e.point(obj)
	if err != nil {
		return 0, err
	}
	if loc != scope.Before && loc != scope.After {
		return 0, ErrLocationFired
	}

	e.mu.Lock()
	var regs []Registration
	for _, r := range e.regs {
		if r.Point != pt {
			continue
		}
		if r.Location == loc || (loc == scope.Before && r.Location == scope.Anywhere) {
			regs = append(regs, r)
		}
	}
	holds, set := e.predicates[pt]
	e.mu.Unlock()
	if !set {
		holds = true
	}

	fired := 0
	gate := map[scope.Location]bool{}
	for _, r := range regs {
		switch r.Primitive {
		case scope.Then:
			if !gate[r.Location] {
				continue
			}
			gate[r.Location] = false
		case scope.Predicated:
			if !holds {
				continue
			}
		}
		frame, err := ev.frame(r.Request)
		if err != nil {
			return fired, err
		}
		flag := r.Entry(r.Request.Context, frame)
		fired++
		if r.Primitive == scope.If {
			gate[r.Location] = flag.Proceeds()
		}
	}
	return fired, nil
}

func (ev Event) frame(req scope.Request) (scope.Frame, error) {
	f := scope.Frame{Extra: req.Extra}
	if len(req.Args) > 0 {
		f.Values = make([]any, len(req.Args))
	}
	for i, x := range req.Args {
		v, err := ev.value(x)
		if err != nil {
			return scope.Frame{}, err
		}
		f.Values[i] = v
	}
	return f, nil
}
