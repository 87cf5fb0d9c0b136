// Package insert is the single choke point through which every callback
// registration reaches a scope.
//
// A registration names a primitive (plain, if, then or predicated), a
// target (the callback being registered), a location, a scope and up to
// arg.MaxExtra extra arguments. Call validates the request, copies the
// extra arguments, assembles a scope.Request and forwards it to the chosen
// primitive in one call.
//
// Errors:
//   - Rejected requests return *Error wrapping one of the sentinel errors
//     (ErrInvalidScope, ErrInvalidLocation, ErrTooManyExtra,
//     ErrInvalidExtraction, ErrInvalidPrimitive). Nothing is registered.
//   - Errors returned by the scope's primitive are returned unchanged.
//
// Thread Safety: Registration is a setup-phase activity. Call holds no
// locks; concurrent registrations on one scope are serialized (or not) by
// the scope implementation.
package insert
