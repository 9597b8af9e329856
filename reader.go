// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

// Reader wraps a total function from an environment S to a result A.
//
// A Reader is an immutable value: composition never mutates the receiver
// or its operands, it always allocates a new Reader closing over them.
// Readers are handled exclusively through pointers, so the native ==
// operator means object identity: a Reader is only ever equal to itself,
// and two Readers built from identical logic compare unequal. Value-level
// comparison of the results two Readers produce is a separate operation;
// see [Eq] and the other comparison combinators.
type Reader[S, A any] struct {
	fn func(S) A
}

// New wraps a function in a Reader.
// The function is not validated and not called; it may panic when the
// Reader is later invoked, and that panic propagates unchanged.
func New[S, A any](fn func(S) A) *Reader[S, A] {
	return &Reader[S, A]{fn: fn}
}

// Invoke calls the wrapped function with the given environment.
// This is the only way to extract a value from a Reader.
func (r *Reader[S, A]) Invoke(env S) A {
	return r.fn(env)
}

// Const returns a Reader that ignores its environment and always
// returns val. val is captured with ordinary closure semantics: if it
// is a pointer, slice, or map, later external mutation remains visible
// through the Reader.
func Const[S, A any](val A) *Reader[S, A] {
	return &Reader[S, A]{fn: func(S) A { return val }}
}

// Ask returns the identity Reader: it produces the environment itself.
func Ask[S any]() *Reader[S, S] {
	return &Reader[S, S]{fn: func(env S) S { return env }}
}

// Local runs r under a transformed environment: the built Reader applies
// f to its environment and invokes r with the result.
func Local[S, T, A any](f func(S) T, r *Reader[T, A]) *Reader[S, A] {
	return &Reader[S, A]{fn: func(env S) A {
		return r.fn(f(env))
	}}
}
