// Package hook is the root of the dynhook instrumentation callback framework.
//
// dynhook attaches typed analysis handlers to points in a running program's
// execution (instructions, basic blocks, traces, routines), optionally gated
// by a predicate, on top of a lower-level instrumentation engine. The engine
// rewrites code; dynhook supplies the typed layer tools are written in.
//
// # Quick Start
//
//	type counter struct{ n atomic.Int64 }
//
//	func (c *counter) Analyze(x arg.Extra) { c.n.Add(1) }
//
//	func instrument(ins hooktest.Ins) error {
//		cb := callback.New0(&counter{})
//		return cb.Insert(scope.Before, ins)
//	}
//
// # Package Overview
//
//   - [github.com/kolkov/dynhook/hook/arg]: argument descriptors, extraction
//     kinds, wrapped value types and extra arguments
//   - [github.com/kolkov/dynhook/hook/scope]: the capability surface engines
//     implement (locations, handles, entry points, primitives)
//   - [github.com/kolkov/dynhook/hook/callback]: callbacks of arity 0..8,
//     conditional callbacks of arity 0..4 and guards pairing the two
//   - [github.com/kolkov/dynhook/hook/insert]: the registration choke point
//   - [github.com/kolkov/dynhook/hook/lock]: scoped locks for state shared
//     between handlers
//   - [github.com/kolkov/dynhook/hook/hooktest]: a simulated engine for tests
//
// This package itself holds version information, the engine compatibility
// check and the logging and configuration entry points.
//
// # Configuration
//
// Settings are read at startup from a YAML file named by DYNHOOK_CONFIG and
// from the DYNHOOK option string, for example:
//
//	DYNHOOK="log=debug retired=panic sites=1"
//
// Use [Configure] and [SetLogger] to change them programmatically.
//
// # Concurrency
//
// Engines may fire entry points from many goroutines at once. Handlers must
// protect shared state themselves, typically with the guards of package lock.
package hook
