// Package hooktest provides a simulated instrumentation engine.
//
// The engine offers four scope kinds (Ins, Bbl, Trace, Routine), records
// every registration made through them and fires the registered entry
// points on demand with caller supplied runtime values. It follows the
// firing rules a real engine applies:
//
//   - Registrations at one scope and location fire in registration order.
//   - An if registration is paired with the then registration that follows
//     it; the then entry fires only when the if entry returns a proceeding
//     flag. A then registration without a pending if is rejected.
//   - A predicated registration fires only while the scope's predicate
//     holds (see SetPredicate; predicates default to true).
//   - Anywhere registrations fire together with Before registrations.
//
// The zero value of every scope kind is its invalid sentinel.
//
// Example:
//
//	e := hooktest.MustNewEngine()
//	ins := e.Ins(0x401000)
//	_ = cb.Insert(scope.Before, ins)
//	_ = e.Fire(ins, scope.Before, hooktest.Event{
//		Values: map[arg.Kind]any{arg.KindInstPtr: uintptr(0x401000)},
//	})
package hooktest
