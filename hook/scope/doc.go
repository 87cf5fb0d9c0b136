// Package scope defines the contract between the callback framework and an
// instrumentation engine.
//
// A Scope is a granularity of executable code (instruction, basic block,
// trace or routine) owned by the engine. It exposes four registration
// primitives, selected by Primitive:
//
//	Plain       InsertCall            fire unconditionally
//	If          InsertIfCall          predicate; result is a Flag
//	Then        InsertThenCall        fire if the preceding If proceeded
//	Predicated  InsertPredicatedCall  fire if the instruction's predicate holds
//
// Every primitive receives the same call shape: a Location, the dispatch
// Entry to invoke, and a Request carrying the opaque context Handle, the
// extraction list and the fixed extra arguments. At run time the engine
// calls Entry(handle, frame) where frame holds one native value per
// extraction followed by the extra arguments, unchanged.
//
// The engine pairs If and Then registrations positionally for a given
// (scope, location). Callers must register them with identical scope,
// location and extra arguments; callback.Guard does this.
//
// Engines may invoke entries from many goroutines at once. Registration is
// expected during a setup phase the engine serializes.
package scope
