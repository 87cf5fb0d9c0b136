package arg

import (
	"fmt"
	"reflect"
)

// Descriptor describes one handler parameter: what to extract, the native
// type N the engine delivers for it, and how to build the wrapped type W
// the handler receives.
//
// Descriptors are immutable values and safe to share between callbacks.
// The zero Descriptor is not usable; build one with Define or one of the
// predefined constructors.
type Descriptor[N, W any] struct {
	x    Extraction
	wrap func(N) W
}

// Define returns a descriptor for kind that wraps natives with wrap.
//
// Define panics if wrap is nil: a wrapped type that cannot be built from
// its native representation is a programming error.
//
// Example:
//
//	type Port uint16
//	var port = arg.Define(arg.KindUser+1, func(v uint16) Port { return Port(v) })
func Define[N, W any](kind Kind, wrap func(N) W) Descriptor[N, W] {
	if wrap == nil {
		panic("arg: Define called with nil wrap function")
	}
	return Descriptor[N, W]{x: Extraction{Kind: kind}, wrap: wrap}
}

// Raw returns a descriptor that hands the native value through unwrapped.
func Raw[N any](kind Kind) Descriptor[N, N] {
	return Define(kind, identity[N])
}

// Const returns a descriptor whose value is v on every firing.
func Const[T any](v T) Descriptor[T, T] {
	return Raw[T](KindConst).WithOperand(v)
}

func identity[T any](v T) T { return v }

// WithOperand returns a copy of d whose extraction carries operand v.
func (d Descriptor[N, W]) WithOperand(v any) Descriptor[N, W] {
	d.x.Operand = v
	return d
}

// Extraction returns the request element the engine receives for d.
func (d Descriptor[N, W]) Extraction() Extraction {
	return d.x
}

// Wrap builds the wrapped parameter from its native value.
func (d Descriptor[N, W]) Wrap(v N) W {
	return d.wrap(v)
}

// Decode converts one frame slot to the wrapped parameter.
//
// The engine must deliver a value of type N for this descriptor; anything
// else is a broken engine contract and Decode panics with *DecodeError.
func (d Descriptor[N, W]) Decode(v any) W {
	n, ok := v.(N)
	if !ok {
		panic(&DecodeError{
			Kind: d.x.Kind,
			Want: reflect.TypeFor[N]().String(),
			Got:  fmt.Sprintf("%T", v),
		})
	}
	return d.wrap(n)
}

// DecodeError reports a frame slot whose dynamic type does not match the
// native type its descriptor declares.
type DecodeError struct {
	Kind Kind
	Want string
	Got  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("arg: %s expects native %s, engine delivered %s", e.Kind, e.Want, e.Got)
}
