// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader_test

import (
	"testing"

	"code.hybscloud.com/reader"
)

func TestMapComposesLeftToRight(t *testing.T) {
	// square first, then addOne
	if got := reader.Map(rSquare, addOne).Invoke(3); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
	// addOne first, then square
	if got := reader.Map(rAddOne, square).Invoke(3); got != 16 {
		t.Fatalf("got %d, want 16", got)
	}
}

func TestMapOnConst(t *testing.T) {
	if got := reader.Map(reader.Const[int](5), square).Invoke(0); got != 25 {
		t.Fatalf("got %d, want 25", got)
	}
}

func TestMapChangesResultType(t *testing.T) {
	length := reader.Map(reader.Ask[string](), func(s string) int { return len(s) })
	if got := length.Invoke("hello"); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestMap2(t *testing.T) {
	sum := reader.Map2(rAddOne, rSquare, func(a, b int) int { return a + b })
	if got := sum.Invoke(3); got != 13 {
		t.Fatalf("got %d, want 13", got)
	}
}

func TestMap2InvokesLeftOperandFirst(t *testing.T) {
	var order []string
	ra := reader.New(func(int) int { order = append(order, "a"); return 1 })
	rb := reader.New(func(int) int { order = append(order, "b"); return 2 })
	got := reader.Map2(ra, rb, func(a, b int) int { return a*10 + b }).Invoke(0)
	if got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("invocation order %v, want [a b]", order)
	}
}

func TestMap3(t *testing.T) {
	m := reader.Map3(reader.Ask[int](), rSquare, rAddOne, func(a, b, c int) int {
		return a + b + c
	})
	if got := m.Invoke(3); got != 16 {
		t.Fatalf("got %d, want 16", got)
	}
}

func TestBindInheritsEnvironment(t *testing.T) {
	// Bind's derived Reader sees the same environment.
	m := reader.Bind(rSquare, func(sq int) *reader.Reader[int, int] {
		return reader.New(func(env int) int { return sq + env })
	})
	if got := m.Invoke(3); got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestThenDiscardsButInvokes(t *testing.T) {
	calls := 0
	counted := reader.New(func(int) int { calls++; return 99 })
	m := reader.Then(counted, rAddOne)
	if got := m.Invoke(3); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	if calls != 1 {
		t.Fatalf("first operand invoked %d times, want 1", calls)
	}
}

func TestCompositionDoesNotInvoke(t *testing.T) {
	calls := 0
	counted := reader.New(func(int) int { calls++; return 0 })
	_ = reader.Map(counted, addOne)
	_ = reader.Map2(counted, counted, func(a, b int) int { return a + b })
	_ = reader.Then(counted, counted)
	_ = reader.Sequence(counted, counted)
	if calls != 0 {
		t.Fatalf("composition invoked operands %d times, want 0", calls)
	}
}
