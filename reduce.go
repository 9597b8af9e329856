// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

import (
	"cmp"

	"github.com/pkg/errors"
)

// Reductions: folding a binary operation over the results of a sequence
// of Readers, producing a single Reader.
//
// Every reduction fans out first: all Readers in the sequence are
// invoked, in order, with the same environment, and the gathered values
// are folded afterwards. Nothing short-circuits; All over (false, x, y)
// still invokes x and y.

// ErrEmptyReduce is the panic value of an unseeded reduction invoked
// over an empty sequence. Construction of such a reduction succeeds;
// the condition surfaces when the built Reader is invoked.
var ErrEmptyReduce = errors.New("reader: reduce of empty sequence with no initial value")

// Fold returns a Reader that folds op left-to-right over the fan-out of
// readers, seeded with initial. An empty sequence yields initial.
func Fold[S, A any](readers []*Reader[S, A], initial A, op func(A, A) A) *Reader[S, A] {
	seq := Sequence(readers...)
	return &Reader[S, A]{fn: func(env S) A {
		acc := initial
		for _, v := range seq.fn(env) {
			acc = op(acc, v)
		}
		return acc
	}}
}

// Reduce returns a Reader that folds op left-to-right over the fan-out
// of readers, seeded with the first result. Invoking the built Reader
// over an empty sequence panics with [ErrEmptyReduce]. Over exactly one
// element the result is that element's value and op is never called.
func Reduce[S, A any](readers []*Reader[S, A], op func(A, A) A) *Reader[S, A] {
	seq := Sequence(readers...)
	return &Reader[S, A]{fn: func(env S) A {
		vals := seq.fn(env)
		if len(vals) == 0 {
			panic(ErrEmptyReduce)
		}
		acc := vals[0]
		for _, v := range vals[1:] {
			acc = op(acc, v)
		}
		return acc
	}}
}

// All returns a Reader producing the conjunction of every operand
// result, vacuously true over an empty sequence. Every operand is
// invoked; a false result does not skip the rest.
func All[S any](readers []*Reader[S, bool]) *Reader[S, bool] {
	return Fold(readers, true, func(a, b bool) bool { return a && b })
}

// Any returns a Reader producing the disjunction of every operand
// result, vacuously false over an empty sequence. Every operand is
// invoked; a true result does not skip the rest.
func Any[S any](readers []*Reader[S, bool]) *Reader[S, bool] {
	return Fold(readers, false, func(a, b bool) bool { return a || b })
}

// Sum returns a Reader producing the sum (or concatenation) of every
// operand result. Invoking over an empty sequence panics with
// [ErrEmptyReduce].
func Sum[S any, A Addable](readers []*Reader[S, A]) *Reader[S, A] {
	return Reduce(readers, func(a, b A) A { return a + b })
}

// Prod returns a Reader producing the product of every operand result.
// Invoking over an empty sequence panics with [ErrEmptyReduce].
func Prod[S any, A Number](readers []*Reader[S, A]) *Reader[S, A] {
	return Reduce(readers, func(a, b A) A { return a * b })
}

// Min returns a Reader producing the least operand result. Invoking
// over an empty sequence panics with [ErrEmptyReduce].
func Min[S any, A cmp.Ordered](readers []*Reader[S, A]) *Reader[S, A] {
	return Reduce(readers, func(a, b A) A { return min(a, b) })
}

// Max returns a Reader producing the greatest operand result. Invoking
// over an empty sequence panics with [ErrEmptyReduce].
func Max[S any, A cmp.Ordered](readers []*Reader[S, A]) *Reader[S, A] {
	return Reduce(readers, func(a, b A) A { return max(a, b) })
}

// MinOr is Min with a default: over an empty sequence the built Reader
// produces def instead of panicking. The default is never folded into a
// non-empty sequence; it is not a seed.
func MinOr[S any, A cmp.Ordered](readers []*Reader[S, A], def A) *Reader[S, A] {
	if len(readers) == 0 {
		return Const[S](def)
	}
	return Min(readers)
}

// MaxOr is Max with a default: over an empty sequence the built Reader
// produces def instead of panicking. The default is never folded into a
// non-empty sequence; it is not a seed.
func MaxOr[S any, A cmp.Ordered](readers []*Reader[S, A], def A) *Reader[S, A] {
	if len(readers) == 0 {
		return Const[S](def)
	}
	return Max(readers)
}
