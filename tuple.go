// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

// Tuple fan-out: invoking several Readers with one environment and
// gathering the results before anything combines them.

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Triple holds three values.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Trd C
}

// Sequence returns a Reader that invokes every input Reader with the
// same environment, in argument order, and returns the results in that
// order. The fan-out is strict: no input is skipped, even when the
// caller discards part of the slice. Zero inputs yield an empty slice.
func Sequence[S, A any](readers ...*Reader[S, A]) *Reader[S, []A] {
	return &Reader[S, []A]{fn: func(env S) []A {
		out := make([]A, len(readers))
		for i, r := range readers {
			out[i] = r.fn(env)
		}
		return out
	}}
}

// Zip returns a Reader producing the pair of both operand results,
// invoking ra then rb with the same environment.
func Zip[S, A, B any](ra *Reader[S, A], rb *Reader[S, B]) *Reader[S, Pair[A, B]] {
	return Map2(ra, rb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{Fst: a, Snd: b}
	})
}

// Zip3 returns a Reader producing the triple of all operand results,
// invoking them left to right with the same environment.
func Zip3[S, A, B, C any](ra *Reader[S, A], rb *Reader[S, B], rc *Reader[S, C]) *Reader[S, Triple[A, B, C]] {
	return Map3(ra, rb, rc, func(a A, b B, c C) Triple[A, B, C] {
		return Triple[A, B, C]{Fst: a, Snd: b, Trd: c}
	})
}
