// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reader provides the Reader functor in Go: an immutable wrapper
// around a total function from an environment S to a result A, with
// combinators for composing wrapped functions and reductions for folding
// collections of Readers into one.
//
// Callers build Readers from plain functions or constants, combine them
// with Map/Map2/named operator combinators or the reductions, and finally
// invoke the composite Reader with an environment value. Data flows one
// way: composition allocates new Readers closing over the operands and
// never invokes or mutates anything; only [Reader.Invoke] runs the
// wrapped functions.
//
// # Construction
//
//   - [New]: wrap a function S -> A
//   - [Const]: environment-independent constant
//   - [Ask]: the identity Reader, producing the environment itself
//   - [Local]: run a Reader under a transformed environment
//
// # Composition
//
//   - [Map]: left-compose a pure function onto a Reader
//   - [Map2], [Map3]: combine Readers with a binary/ternary function,
//     invoking operands left to right with the same environment
//   - [Bind]: monadic sequencing, the produced Reader inherits the
//     same environment
//   - [Then]: sequence, discarding the first result (still invoked)
//
// # Fan-out
//
//   - [Sequence]: invoke n Readers with one environment, gather a slice
//   - [Zip], [Zip3]: heterogeneous fixed-arity fan-out into [Pair]/[Triple]
//
// Fan-out is strict: every operand is invoked, in order, before the
// results are combined. None of the combinators short-circuit.
//
// # Operator combinators
//
// Named functions forwarding to the native Go operator on the produced
// values: [Add], [Sub], [Mul], [Div], [Mod], [Pow], [Neg] (arithmetic),
// [And], [Or], [Xor], [Not] (boolean, never short-circuiting),
// [BitAnd], [BitOr], [BitXor], [BitNot] (integers),
// [Eq], [Ne], [Lt], [Le], [Gt], [Ge] (comparison of produced values),
// [Index], [Lookup], [Contains], [ContainsKey] (containers).
//
// The library forwards to native operator semantics and never
// reimplements them: integer division truncates, out-of-range indexing
// panics, mixing operand types does not compile.
//
// # Reductions
//
//   - [Fold]: seeded left fold over the fan-out of a sequence
//   - [Reduce]: unseeded; panics with [ErrEmptyReduce] when invoked over
//     an empty sequence, and over a single element returns its value
//     without calling the operation
//   - [All], [Any]: vacuously true/false on empty input
//   - [Sum], [Prod], [Min], [Max]: unseeded specializations
//   - [MinOr], [MaxOr]: default-on-empty variants of Min/Max
//
// # Identity versus value comparison
//
// Readers are handled through pointers, so the native == operator means
// object identity: a Reader equals only itself, two Readers built from
// identical logic are distinct, and Readers work as map keys. The
// comparison combinators ([Eq], [Lt], ...) instead build a new Reader
// comparing the values the operands produce. The two notions never
// share a spelling.
//
// # Errors
//
// The library catches nothing and wraps nothing: panics from wrapped
// functions or from native operations on produced values propagate to
// the caller of Invoke unchanged. The one condition the library raises
// itself is [ErrEmptyReduce], panicked deterministically by unseeded
// reductions invoked over empty sequences.
//
// # Example
//
//	square := reader.New(func(x int) int { return x * x })
//	addOne := reader.New(func(x int) int { return x + 1 })
//
//	total := reader.Sum([]*reader.Reader[int, int]{
//		reader.Ask[int](), square, addOne,
//	})
//	// total.Invoke(3) == 3 + 9 + 4 == 16
package reader
