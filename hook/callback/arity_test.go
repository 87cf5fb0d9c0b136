package callback_test

import (
	"github.com/kolkov/dynhook/hook/arg"
	"github.com/kolkov/dynhook/hook/callback"
)

// user describes the i'th test argument, an int delivered as is.
func user(i int) arg.Descriptor[int, int] {
	return arg.Raw[int](arg.KindUser + arg.Kind(i))
}

func newAction0(rec *recorder) callback.Callback {
	return callback.New0(callback.ActionFunc0(func(x arg.Extra) {
		rec.add(nil, x)
	}))
}

func newAction1(rec *recorder) callback.Callback {
	return callback.New1(callback.ActionFunc1[int](func(w1 int, x arg.Extra) {
		rec.add([]int{w1}, x)
	}), user(0))
}

func newAction2(rec *recorder) callback.Callback {
	return callback.New2(callback.ActionFunc2[int, int](func(w1 int, w2 int, x arg.Extra) {
		rec.add([]int{w1, w2}, x)
	}), user(0), user(1))
}

func newAction3(rec *recorder) callback.Callback {
	return callback.New3(callback.ActionFunc3[int, int, int](func(w1 int, w2 int, w3 int, x arg.Extra) {
		rec.add([]int{w1, w2, w3}, x)
	}), user(0), user(1), user(2))
}

func newAction4(rec *recorder) callback.Callback {
	return callback.New4(callback.ActionFunc4[int, int, int, int](func(w1 int, w2 int, w3 int, w4 int, x arg.Extra) {
		rec.add([]int{w1, w2, w3, w4}, x)
	}), user(0), user(1), user(2), user(3))
}

func newAction5(rec *recorder) callback.Callback {
	return callback.New5(callback.ActionFunc5[int, int, int, int, int](func(w1 int, w2 int, w3 int, w4 int, w5 int, x arg.Extra) {
		rec.add([]int{w1, w2, w3, w4, w5}, x)
	}), user(0), user(1), user(2), user(3), user(4))
}

func newAction6(rec *recorder) callback.Callback {
	return callback.New6(callback.ActionFunc6[int, int, int, int, int, int](func(w1 int, w2 int, w3 int, w4 int, w5 int, w6 int, x arg.Extra) {
		rec.add([]int{w1, w2, w3, w4, w5, w6}, x)
	}), user(0), user(1), user(2), user(3), user(4), user(5))
}

func newAction7(rec *recorder) callback.Callback {
	return callback.New7(callback.ActionFunc7[int, int, int, int, int, int, int](func(w1 int, w2 int, w3 int, w4 int, w5 int, w6 int, w7 int, x arg.Extra) {
		rec.add([]int{w1, w2, w3, w4, w5, w6, w7}, x)
	}), user(0), user(1), user(2), user(3), user(4), user(5), user(6))
}

func newAction8(rec *recorder) callback.Callback {
	return callback.New8(callback.ActionFunc8[int, int, int, int, int, int, int, int](func(w1 int, w2 int, w3 int, w4 int, w5 int, w6 int, w7 int, w8 int, x arg.Extra) {
		rec.add([]int{w1, w2, w3, w4, w5, w6, w7, w8}, x)
	}), user(0), user(1), user(2), user(3), user(4), user(5), user(6), user(7))
}

func newConditional0(rec *recorder, proceed func([]int) bool) callback.Conditional {
	return callback.NewConditional0(callback.PredicateFunc0(func(x arg.Extra) bool {
		rec.add(nil, x)
		return proceed(nil)
	}))
}

func newConditional1(rec *recorder, proceed func([]int) bool) callback.Conditional {
	return callback.NewConditional1(callback.PredicateFunc1[int](func(w1 int, x arg.Extra) bool {
		rec.add([]int{w1}, x)
		return proceed([]int{w1})
	}), user(0))
}

func newConditional2(rec *recorder, proceed func([]int) bool) callback.Conditional {
	return callback.NewConditional2(callback.PredicateFunc2[int, int](func(w1 int, w2 int, x arg.Extra) bool {
		rec.add([]int{w1, w2}, x)
		return proceed([]int{w1, w2})
	}), user(0), user(1))
}

func newConditional3(rec *recorder, proceed func([]int) bool) callback.Conditional {
	return callback.NewConditional3(callback.PredicateFunc3[int, int, int](func(w1 int, w2 int, w3 int, x arg.Extra) bool {
		rec.add([]int{w1, w2, w3}, x)
		return proceed([]int{w1, w2, w3})
	}), user(0), user(1), user(2))
}

func newConditional4(rec *recorder, proceed func([]int) bool) callback.Conditional {
	return callback.NewConditional4(callback.PredicateFunc4[int, int, int, int](func(w1 int, w2 int, w3 int, w4 int, x arg.Extra) bool {
		rec.add([]int{w1, w2, w3, w4}, x)
		return proceed([]int{w1, w2, w3, w4})
	}), user(0), user(1), user(2), user(3))
}

var actions = []func(*recorder) callback.Callback{
	newAction0, newAction1, newAction2, newAction3, newAction4,
	newAction5, newAction6, newAction7, newAction8,
}

var conditionals = []func(*recorder, func([]int) bool) callback.Conditional{
	newConditional0, newConditional1, newConditional2, newConditional3, newConditional4,
}
