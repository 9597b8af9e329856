// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

// Functor and monad operations for Readers.
//
// Map introduces a fresh result type parameter, so these are free
// functions rather than methods: Go methods cannot add type parameters.
// All of them build closures only; no operand Reader is invoked until
// the resulting Reader is invoked.

// Map left-composes a pure function onto a Reader: the built Reader
// invokes r, then applies f to the result.
func Map[S, A, B any](r *Reader[S, A], f func(A) B) *Reader[S, B] {
	return &Reader[S, B]{fn: func(env S) B {
		return f(r.fn(env))
	}}
}

// Map2 combines two Readers with a binary function. The built Reader
// invokes ra then rb, in that order, with the same environment, and
// returns op(a, b). Both operands are always invoked.
func Map2[S, A, B, C any](ra *Reader[S, A], rb *Reader[S, B], op func(A, B) C) *Reader[S, C] {
	return &Reader[S, C]{fn: func(env S) C {
		a := ra.fn(env)
		b := rb.fn(env)
		return op(a, b)
	}}
}

// Map3 combines three Readers with a ternary function, invoking the
// operands left to right with the same environment.
func Map3[S, A, B, C, D any](ra *Reader[S, A], rb *Reader[S, B], rc *Reader[S, C], op func(A, B, C) D) *Reader[S, D] {
	return &Reader[S, D]{fn: func(env S) D {
		a := ra.fn(env)
		b := rb.fn(env)
		c := rc.fn(env)
		return op(a, b, c)
	}}
}

// Bind sequences a Reader with a Reader-producing function (monadic
// bind). The built Reader invokes r, passes the result to f, and
// invokes the returned Reader with the same environment.
func Bind[S, A, B any](r *Reader[S, A], f func(A) *Reader[S, B]) *Reader[S, B] {
	return &Reader[S, B]{fn: func(env S) B {
		return f(r.fn(env)).fn(env)
	}}
}

// Then sequences two Readers, discarding the first result. ra is still
// invoked; only its value is dropped.
func Then[S, A, B any](ra *Reader[S, A], rb *Reader[S, B]) *Reader[S, B] {
	return &Reader[S, B]{fn: func(env S) B {
		_ = ra.fn(env)
		return rb.fn(env)
	}}
}
