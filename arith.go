// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Arithmetic combinators. Each forwards to the corresponding native Go
// operator on the produced values; the combinator layer adds nothing to
// its semantics, so operand incompatibilities are compile-time errors
// and runtime faults (integer division by zero, overflow wrapping)
// behave exactly as the native operator does.

// Number is the constraint for operand types of the numeric combinators.
type Number interface {
	constraints.Integer | constraints.Float
}

// Addable is the constraint for operand types of [Add] and [Sum]:
// everything the native + operator accepts, including strings.
type Addable interface {
	Number | ~string
}

// Add builds a Reader producing the sum (or concatenation) of both
// operand results.
func Add[S any, A Addable](ra, rb *Reader[S, A]) *Reader[S, A] {
	return Map2(ra, rb, func(a, b A) A { return a + b })
}

// Sub builds a Reader producing the difference of both operand results.
func Sub[S any, A Number](ra, rb *Reader[S, A]) *Reader[S, A] {
	return Map2(ra, rb, func(a, b A) A { return a - b })
}

// Mul builds a Reader producing the product of both operand results.
func Mul[S any, A Number](ra, rb *Reader[S, A]) *Reader[S, A] {
	return Map2(ra, rb, func(a, b A) A { return a * b })
}

// Div builds a Reader producing the quotient of both operand results,
// with native division semantics for the operand type (truncated for
// integers, a divide-by-zero panic propagates unchanged).
func Div[S any, A Number](ra, rb *Reader[S, A]) *Reader[S, A] {
	return Map2(ra, rb, func(a, b A) A { return a / b })
}

// Mod builds a Reader producing the remainder of both operand results.
func Mod[S any, A constraints.Integer](ra, rb *Reader[S, A]) *Reader[S, A] {
	return Map2(ra, rb, func(a, b A) A { return a % b })
}

// Pow builds a Reader raising the first operand result to the second.
func Pow[S any, A constraints.Float](ra, rb *Reader[S, A]) *Reader[S, A] {
	return Map2(ra, rb, func(a, b A) A {
		return A(math.Pow(float64(a), float64(b)))
	})
}

// Neg builds a Reader producing the negation of the operand result.
func Neg[S any, A Number](r *Reader[S, A]) *Reader[S, A] {
	return Map(r, func(a A) A { return -a })
}
