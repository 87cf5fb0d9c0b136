package scope

// Primitive selects one of a scope's registration primitives.
type Primitive uint8

const (
	// Plain registers an unconditional call.
	Plain Primitive = iota + 1
	// If registers a predicate whose Flag gates the next Then.
	If
	// Then registers a call gated by the preceding If.
	Then
	// Predicated registers a call gated by the instruction's own predicate.
	Predicated
)

func (p Primitive) String() string {
	switch p {
	case Plain:
		return "plain"
	case If:
		return "if"
	case Then:
		return "then"
	case Predicated:
		return "predicated"
	default:
		return "invalid"
	}
}

// Valid reports whether p names a primitive.
func (p Primitive) Valid() bool {
	return p >= Plain && p <= Predicated
}

// Call invokes primitive p on obj. It panics if p is not valid.
func (p Primitive) Call(obj Scope, loc Location, entry Entry, req Request) error {
	switch p {
	case Plain:
		return obj.InsertCall(loc, entry, req)
	case If:
		return obj.InsertIfCall(loc, entry, req)
	case Then:
		return obj.InsertThenCall(loc, entry, req)
	case Predicated:
		return obj.InsertPredicatedCall(loc, entry, req)
	default:
		panic("scope: call of invalid primitive " + p.String())
	}
}
