// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

import "slices"

// Indexing and membership combinators over container-producing Readers.

// Index builds a Reader producing the i-th element of the produced
// slice. An out-of-range index panics at invocation, exactly as native
// slice indexing does.
func Index[S, A any](r *Reader[S, []A], i int) *Reader[S, A] {
	return Map(r, func(s []A) A { return s[i] })
}

// Lookup builds a Reader producing the value under key in the produced
// map, with native lookup semantics: the zero value for a missing key.
func Lookup[S any, K comparable, V any](r *Reader[S, map[K]V], key K) *Reader[S, V] {
	return Map(r, func(m map[K]V) V { return m[key] })
}

// Contains builds a Reader producing whether elem appears in the
// produced slice.
func Contains[S any, A comparable](r *Reader[S, []A], elem A) *Reader[S, bool] {
	return Map(r, func(s []A) bool { return slices.Contains(s, elem) })
}

// ContainsKey builds a Reader producing whether key is present in the
// produced map.
func ContainsKey[S any, K comparable, V any](r *Reader[S, map[K]V], key K) *Reader[S, bool] {
	return Map(r, func(m map[K]V) bool {
		_, ok := m[key]
		return ok
	})
}
