// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

import "golang.org/x/exp/constraints"

// Boolean and bitwise combinators.
//
// None of the boolean combinators short-circuit: both operand Readers
// are always invoked, then the results are combined. Conditional
// evaluation of one operand based on the other is not offered; a Reader
// describes a complete fan-out, not control flow.

// And builds a Reader producing the conjunction of both operand
// results. Both operands are invoked regardless of the first result.
func And[S any](ra, rb *Reader[S, bool]) *Reader[S, bool] {
	return Map2(ra, rb, func(a, b bool) bool { return a && b })
}

// Or builds a Reader producing the disjunction of both operand results.
// Both operands are invoked regardless of the first result.
func Or[S any](ra, rb *Reader[S, bool]) *Reader[S, bool] {
	return Map2(ra, rb, func(a, b bool) bool { return a || b })
}

// Xor builds a Reader producing the exclusive or of both operand results.
func Xor[S any](ra, rb *Reader[S, bool]) *Reader[S, bool] {
	return Map2(ra, rb, func(a, b bool) bool { return a != b })
}

// Not builds a Reader producing the logical negation of the operand
// result.
func Not[S any](r *Reader[S, bool]) *Reader[S, bool] {
	return Map(r, func(a bool) bool { return !a })
}

// BitAnd builds a Reader producing the bitwise and of both operand
// results.
func BitAnd[S any, A constraints.Integer](ra, rb *Reader[S, A]) *Reader[S, A] {
	return Map2(ra, rb, func(a, b A) A { return a & b })
}

// BitOr builds a Reader producing the bitwise or of both operand results.
func BitOr[S any, A constraints.Integer](ra, rb *Reader[S, A]) *Reader[S, A] {
	return Map2(ra, rb, func(a, b A) A { return a | b })
}

// BitXor builds a Reader producing the bitwise exclusive or of both
// operand results.
func BitXor[S any, A constraints.Integer](ra, rb *Reader[S, A]) *Reader[S, A] {
	return Map2(ra, rb, func(a, b A) A { return a ^ b })
}

// BitNot builds a Reader producing the bitwise complement of the
// operand result.
func BitNot[S any, A constraints.Integer](r *Reader[S, A]) *Reader[S, A] {
	return Map(r, func(a A) A { return ^a })
}
