// File: ranges_test.go
// Title: Range Algorithm Tests
// Description: Tests for sorting, searching, partitioning and duplicate
//              removal over slices of values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package strv

import (
	"slices"
	"testing"
)

func TestOrder(t *testing.T) {
	tests := []struct {
		order Order
		name  string
		a, b  string
		want  int
	}{
		{OrderAsc, "asc", "a", "B", 1},
		{OrderDesc, "desc", "a", "B", -1},
		{OrderAscFold, "asc-fold", "a", "B", -1},
		{OrderDescFold, "desc-fold", "a", "B", 1},
	}
	for _, tt := range tests {
		if tt.order.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.order.String(), tt.name)
		}
		if got := tt.order.Compare(Lit(tt.a), Lit(tt.b)); got != tt.want {
			t.Errorf("%s.Compare(%q, %q) = %d, want %d", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
	if Order(9).String() != "Order(9)" {
		t.Errorf("unknown order String() = %q", Order(9).String())
	}
}

func TestSortRange(t *testing.T) {
	src := Values("z", "zzz", "aaa", "bbb")

	SortRange(OrderAsc, src)
	if got := Strings(src); !slices.Equal(got, []string{"aaa", "bbb", "z", "zzz"}) {
		t.Errorf("ascending = %v", got)
	}

	SortRange(OrderDesc, src)
	if got := Strings(src); !slices.Equal(got, []string{"zzz", "z", "bbb", "aaa"}) {
		t.Errorf("descending = %v", got)
	}

	SortRange(OrderAsc, nil)
	one := Values("x")
	SortRange(OrderDesc, one)
	if one[0].String() != "x" {
		t.Error("single element must be untouched")
	}
}

func TestSortRangeFold(t *testing.T) {
	src := Values("Zzz", "zzz", "aaa", "AAA")

	SortRange(OrderAscFold, src)
	for i, want := range []string{"aaa", "aaa", "zzz", "zzz"} {
		if !EqualFold(src[i], Lit(want)) {
			t.Errorf("ascending[%d] = %q, want %q", i, src[i].String(), want)
		}
	}

	SortRange(OrderDescFold, src)
	for i, want := range []string{"zzz", "zzz", "aaa", "aaa"} {
		if !EqualFold(src[i], Lit(want)) {
			t.Errorf("descending[%d] = %q, want %q", i, src[i].String(), want)
		}
	}
}

func TestSearchRange(t *testing.T) {
	src := Values("z", "zzz", "aaa", "bbb")
	SortRange(OrderAsc, src)

	for i := range src {
		if got := SearchRange(src[i], src); got != &src[i] {
			t.Errorf("SearchRange(%q) = %p, want %p", src[i].String(), got, &src[i])
		}
	}
	if SearchRange(Lit("xxx"), src) != nil {
		t.Error("SearchRange(xxx) should be nil")
	}
	if SearchRange(Lit("a"), nil) != nil {
		t.Error("search in an empty slice should be nil")
	}

	folded := Values("AAA", "bbb", "Zzz")
	SortRange(OrderAscFold, folded)
	if got := SearchRangeFold(Lit("ZZZ"), folded); got == nil || got.String() != "Zzz" {
		t.Errorf("SearchRangeFold(ZZZ) = %v", got)
	}
	if SearchRangeFold(Lit("ccc"), folded) != nil {
		t.Error("SearchRangeFold(ccc) should be nil")
	}
}

func TestPartitionRange(t *testing.T) {
	short := func(v Value) bool { return v.Len() < 2 }

	src := Values("zzz", "a", "aaaa", "z")
	if n := PartitionRange(short, src[:1]); n != 0 {
		t.Errorf("PartitionRange(first) = %d, want 0", n)
	}

	n := PartitionRange(short, src)
	if n != 2 {
		t.Fatalf("PartitionRange() = %d, want 2", n)
	}
	for i, v := range src {
		if short(v) != (i < n) {
			t.Errorf("element %d (%q) on the wrong side of %d", i, v.String(), n)
		}
	}
	if got := Strings(src[:n]); !slices.Contains(got, "a") || !slices.Contains(got, "z") {
		t.Errorf("satisfying group = %v", got)
	}

	if PartitionRange(short, nil) != 0 || PartitionRange(short, src[:0]) != 0 {
		t.Error("empty input should return 0")
	}
}

func TestUniqueRange(t *testing.T) {
	src := Values("aaa", "zzz", "bbb", "aaa", "ccc", "ccc", "aaa", "ccc", "zzz")
	SortRange(OrderAsc, src)

	n := UniqueRange(src)
	if n != 4 {
		t.Fatalf("UniqueRange() = %d, want 4", n)
	}
	if got := Strings(src[:n]); !slices.Equal(got, []string{"aaa", "bbb", "ccc", "zzz"}) {
		t.Errorf("survivors = %v", got)
	}

	rest := Strings(src[n:])
	slices.Sort(rest)
	if !slices.Equal(rest, []string{"aaa", "aaa", "ccc", "ccc", "zzz"}) {
		t.Errorf("removed elements = %v", rest)
	}

	sorted := Values("aaa", "aaa", "bbb", "ccc", "ccc", "ccc", "zzz", "zzz")
	if n := UniqueRange(sorted); n != 4 {
		t.Errorf("UniqueRange() = %d, want 4", n)
	}

	if UniqueRange(nil) != 0 || UniqueRange(Values("x")) != 1 {
		t.Error("short inputs are already unique")
	}
}

func TestUniqueRangeKeepsOwnedDuplicatesFreeable(t *testing.T) {
	limit := NewLimitAllocator(nil, 1<<10)
	useAllocator(t, limit)

	src := make([]Value, 4)
	for i, s := range []string{"a", "a", "b", "b"} {
		if err := Copy(&src[i], Lit(s)); err != nil {
			t.Fatalf("Copy() error = %v", err)
		}
	}

	if n := UniqueRange(src); n != 2 {
		t.Fatalf("UniqueRange() = %d, want 2", n)
	}
	for i := range src {
		Clear(&src[i])
	}
	if limit.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d, want 0", limit.Outstanding())
	}
}
