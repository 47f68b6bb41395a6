// File: compare.go
// Title: Comparison and Predicates
// Description: Byte-wise and ASCII case-folded comparison of values with
//              prefix, suffix and substring predicates.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strv

import "bytes"

// Equal reports whether a and b hold the same bytes. Ownership and storage
// location do not matter.
func Equal(a, b Value) bool {
	return bytes.Equal(a.read("strv.Equal"), b.read("strv.Equal"))
}

// Compare orders a and b lexicographically by unsigned byte value and
// returns -1, 0 or 1. A proper prefix orders before the longer value.
func Compare(a, b Value) int {
	return bytes.Compare(a.read("strv.Compare"), b.read("strv.Compare"))
}

// EqualFold is Equal with ASCII letters compared case-insensitively
func EqualFold(a, b Value) bool {
	x, y := a.read("strv.EqualFold"), b.read("strv.EqualFold")
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if lower(x[i]) != lower(y[i]) {
			return false
		}
	}
	return true
}

// CompareFold is Compare with ASCII letters folded to lower case first.
// Bytes outside A-Z compare unchanged.
func CompareFold(a, b Value) int {
	x, y := a.read("strv.CompareFold"), b.read("strv.CompareFold")
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		cx, cy := lower(x[i]), lower(y[i])
		if cx != cy {
			if cx < cy {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// HasPrefix reports whether s begins with prefix. An empty prefix always
// matches.
func HasPrefix(s, prefix Value) bool {
	return bytes.HasPrefix(s.read("strv.HasPrefix"), prefix.read("strv.HasPrefix"))
}

// HasSuffix reports whether s ends with suffix. An empty suffix always
// matches.
func HasSuffix(s, suffix Value) bool {
	return bytes.HasSuffix(s.read("strv.HasSuffix"), suffix.read("strv.HasSuffix"))
}

// Index returns the byte offset of the first occurrence of p in s, or -1
// when p is empty or absent.
func Index(s, p Value) int {
	pat := p.read("strv.Index")
	if len(pat) == 0 {
		return -1
	}
	return bytes.Index(s.read("strv.Index"), pat)
}
