package insert

import (
	"fmt"

	"github.com/kolkov/dynhook/hook/arg"
	"github.com/kolkov/dynhook/hook/scope"
	"github.com/kolkov/dynhook/internal/hook/config"
	"github.com/kolkov/dynhook/internal/hook/logging"
	"github.com/kolkov/dynhook/internal/hook/site"
)

// Target is a registrable callback.
type Target interface {
	// Handle is passed back to Entry on every firing.
	Handle() scope.Handle
	// Entry is the dispatch entry point.
	Entry() scope.Entry
	// Extractions lists one extraction per callback parameter, in order.
	Extractions() []arg.Extraction
}

// Call registers t through primitive p of obj at loc with the given extra
// arguments.
//
// Parameters:
//   - p: Registration primitive
//   - t: Callback to register
//   - loc: Firing location
//   - obj: Scope to register on (must be non-nil and valid)
//   - extra: Up to arg.MaxExtra fixed values delivered on every firing
//
// Returns:
//   - error: *Error if the request is rejected, otherwise the primitive's
//     own result unchanged
func Call(p scope.Primitive, t Target, loc scope.Location, obj scope.Scope, extra ...any) error {
	if err := Validate(p, t, loc, obj, len(extra)); err != nil {
		return err
	}
	return Forward(p, loc, obj, t.Entry(), NewRequest(t, extra))
}

// Validate checks a registration without performing it.
//
// Returns:
//   - error: *Error wrapping the first violated constraint, or nil
func Validate(p scope.Primitive, t Target, loc scope.Location, obj scope.Scope, nextra int) error {
	var err error
	switch {
	case !p.Valid():
		err = ErrInvalidPrimitive
	case !loc.Valid():
		err = ErrInvalidLocation
	case nextra > arg.MaxExtra:
		err = fmt.Errorf("%w: %d > %d", ErrTooManyExtra, nextra, arg.MaxExtra)
	case !scope.IsValid(obj):
		err = ErrInvalidScope
	default:
		for i, x := range t.Extractions() {
			if xerr := x.Validate(); xerr != nil {
				err = fmt.Errorf("%w: argument %d: %w", ErrInvalidExtraction, i+1, xerr)
				break
			}
		}
	}
	if err == nil {
		return nil
	}
	e := newError(p, loc, obj, err)
	logging.L().Notice().
		Err(e.Err).
		Str("primitive", p.String()).
		Str("location", loc.String()).
		Str("scope", e.Scope).
		Log("dynhook: registration rejected")
	return e
}

// NewRequest builds the request for t. The extra arguments are copied;
// later changes to the caller's slice are not observed.
func NewRequest(t Target, extra []any) scope.Request {
	req := scope.Request{
		Context: t.Handle(),
		Args:    t.Extractions(),
	}
	if len(extra) > 0 {
		req.Extra = append([]any(nil), extra...)
	}
	if config.Current().Sites {
		req.Site = site.Capture(1)
	}
	return req
}

// Retarget returns req rewritten for t, sharing req's extra arguments and
// site.
func Retarget(req scope.Request, t Target) scope.Request {
	req.Context = t.Handle()
	req.Args = t.Extractions()
	return req
}

// Forward hands an already validated request to primitive p of obj.
// The primitive's error is returned unchanged.
func Forward(p scope.Primitive, loc scope.Location, obj scope.Scope, entry scope.Entry, req scope.Request) error {
	err := p.Call(obj, loc, entry, req)
	if b := logging.L().Debug(); b.Enabled() {
		b = b.Str("primitive", p.String()).
			Str("location", loc.String()).
			Stringer("handle", req.Context).
			Int("arity", len(req.Args)).
			Int("extra", len(req.Extra))
		if req.Site != 0 {
			if tr := site.Lookup(req.Site); tr != nil {
				b = b.Str("site", tr.Caller())
			}
		}
		if err != nil {
			b = b.Err(err)
		}
		b.Log("dynhook: registration")
	}
	return err
}
