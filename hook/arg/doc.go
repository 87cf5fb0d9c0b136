// Package arg describes the runtime values an analysis callback receives.
//
// A Descriptor names one value to extract from the running program (the
// instruction pointer, the Nth call argument, a return value, a constant)
// together with two types:
//
//   - N, the native representation the engine produces for that kind
//   - W, the wrapped type the handler actually receives, built from N
//
// The ordered descriptors passed to a callback constructor form its argument
// list. The list length is the callback's arity and is fixed at compile time
// by the constructor chosen (callback.New0 ... callback.New8).
//
// Example:
//
//	// Handler receives (Address, Value, Extra).
//	cb := callback.New2(h, arg.InstPtr(), arg.FuncArg(0))
//
// Fixed extra arguments given at registration are not described by
// descriptors; they reach the handler unchanged through Extra.
package arg
