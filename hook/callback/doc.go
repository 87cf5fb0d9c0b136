// Package callback turns typed analysis handlers into engine entry points.
//
// A callback pairs a handler with an argument list: one arg.Descriptor per
// handler parameter, in order. At every firing the engine hands the entry
// point one native value per descriptor; the entry point decodes and wraps
// each value and calls the handler with the wrapped values followed by the
// fixed extra arguments given at insertion.
//
// Two families exist, one type per arity:
//
//   - CallbackN (N in 0..8) wraps an ActionN handler:
//     Analyze(w1, ..., wN, x arg.Extra)
//   - ConditionalN (N in 0..4) wraps a PredicateN handler:
//     Proceed(w1, ..., wN, x arg.Extra) bool
//
// A conditional gates an action through a Guard, which registers the pair
// atomically: the conditional through the scope's if primitive and the
// action through its then primitive, with the same scope, location and
// extra arguments.
//
// Example:
//
//	type counter struct{ n atomic.Int64 }
//
//	func (c *counter) Analyze(ip arg.Address, x arg.Extra) { c.n.Add(1) }
//
//	cb := callback.New1(&counter{}, arg.InstPtr())
//	if err := cb.Insert(scope.Before, ins); err != nil {
//		return err
//	}
//
// Lifetime:
//
// Every callback is registered under a scope.Handle for its whole life. The
// engine passes the handle back on each firing and the entry point resolves
// it. Retire ends the registration; later firings are dropped with a
// warning (or panic, with DYNHOOK="retired=panic").
//
// Thread Safety: Entry points are safe for concurrent use. Handler methods
// are called concurrently from whatever goroutines the engine fires on; the
// framework adds no synchronization around them (see package lock).
package callback

//go:generate go run ../../internal/hook/gen/arity -out arity_gen.go
