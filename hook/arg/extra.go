package arg

// MaxExtra is the largest number of fixed extra arguments one registration
// may carry.
const MaxExtra = 6

// Extra is a read-only view of the fixed extra arguments given when a
// callback was inserted. The same values are delivered on every firing.
type Extra struct {
	vals []any
}

// NewExtra returns an Extra holding a copy of vals.
func NewExtra(vals ...any) Extra {
	if len(vals) == 0 {
		return Extra{}
	}
	return Extra{vals: append([]any(nil), vals...)}
}

// ExtraOf returns an Extra sharing vals without copying. Engines use it on
// the dispatch path; vals must not be modified afterwards.
func ExtraOf(vals []any) Extra {
	return Extra{vals: vals}
}

// Len returns the number of extra arguments.
func (x Extra) Len() int { return len(x.vals) }

// At returns the i'th extra argument. It panics if i is out of range.
func (x Extra) At(i int) any { return x.vals[i] }

// Values returns a copy of all extra arguments.
func (x Extra) Values() []any {
	if len(x.vals) == 0 {
		return nil
	}
	return append([]any(nil), x.vals...)
}

// ExtraAt returns the i'th extra argument as T. The boolean is false if i is
// out of range or the argument is not a T.
func ExtraAt[T any](x Extra, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(x.vals) {
		return zero, false
	}
	v, ok := x.vals[i].(T)
	if !ok {
		return zero, false
	}
	return v, true
}
