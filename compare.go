// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

import "cmp"

// Comparison combinators. These compare the values two Readers produce,
// not the Readers themselves: comparing Readers is the native == on the
// pointers, which is object identity. A composite "are the outputs
// equal" Reader and "is this the same Reader" never share a spelling.

// Eq builds a Reader producing whether both operand results are equal.
func Eq[S any, A comparable](ra, rb *Reader[S, A]) *Reader[S, bool] {
	return Map2(ra, rb, func(a, b A) bool { return a == b })
}

// Ne builds a Reader producing whether both operand results differ.
func Ne[S any, A comparable](ra, rb *Reader[S, A]) *Reader[S, bool] {
	return Map2(ra, rb, func(a, b A) bool { return a != b })
}

// Lt builds a Reader producing whether the first operand result orders
// strictly before the second.
func Lt[S any, A cmp.Ordered](ra, rb *Reader[S, A]) *Reader[S, bool] {
	return Map2(ra, rb, func(a, b A) bool { return a < b })
}

// Le builds a Reader producing whether the first operand result orders
// before or equal to the second.
func Le[S any, A cmp.Ordered](ra, rb *Reader[S, A]) *Reader[S, bool] {
	return Map2(ra, rb, func(a, b A) bool { return a <= b })
}

// Gt builds a Reader producing whether the first operand result orders
// strictly after the second.
func Gt[S any, A cmp.Ordered](ra, rb *Reader[S, A]) *Reader[S, bool] {
	return Map2(ra, rb, func(a, b A) bool { return a > b })
}

// Ge builds a Reader producing whether the first operand result orders
// after or equal to the second.
func Ge[S any, A cmp.Ordered](ra, rb *Reader[S, A]) *Reader[S, bool] {
	return Map2(ra, rb, func(a, b A) bool { return a >= b })
}
