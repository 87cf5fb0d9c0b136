package callback

import (
	"github.com/kolkov/dynhook/hook/insert"
	"github.com/kolkov/dynhook/hook/scope"
)

// Guard pairs a conditional with an action. The action fires only on
// firings where the conditional proceeds.
//
// A Guard holds two references; copying it is cheap and the copies insert
// the same pair.
type Guard struct {
	cond Conditional
	act  insert.Target
}

// NewGuard pairs cond with act. It panics if either is nil.
func NewGuard(cond Conditional, act Callback) Guard {
	if cond == nil || act == nil {
		panic("callback: NewGuard with nil conditional or action")
	}
	return Guard{cond: cond, act: act}
}

// Conditional returns the guarding conditional.
func (g Guard) Conditional() Conditional { return g.cond }

// Insert registers the pair on obj at loc.
//
// It performs exactly two registrations with one shared copy of extra:
// the conditional through the if primitive, then the action through the
// then primitive. The request is validated for both before either
// registration, so a rejected request registers nothing. If the if
// registration fails its error is returned and the then registration is
// not attempted.
//
// Returns:
//   - error: *insert.Error for a rejected request, or a primitive's error
func (g Guard) Insert(loc scope.Location, obj scope.Scope, extra ...any) error {
	if err := insert.Validate(scope.If, g.cond, loc, obj, len(extra)); err != nil {
		return err
	}
	if err := insert.Validate(scope.Then, g.act, loc, obj, len(extra)); err != nil {
		return err
	}
	req := insert.NewRequest(g.cond, extra)
	if err := insert.Forward(scope.If, loc, obj, g.cond.Entry(), req); err != nil {
		return err
	}
	return insert.Forward(scope.Then, loc, obj, g.act.Entry(), insert.Retarget(req, g.act))
}
