// File: build.go
// Title: Construction Algorithms
// Description: Concatenation and delimiter joins of value fragments into an
//              owned target with a single allocation.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Result length is checked for int overflow

package strv

import (
	"math"

	"github.com/msto63/strv/core/errors"
)

// Concat replaces *dst with the fragments written back to back. Fragments
// may alias *dst. When the result is empty *dst is cleared; on failure it
// is unchanged.
func Concat(dst *Value, fragments []Value) error {
	total, ok := 0, true
	for _, f := range fragments {
		if total, ok = addLen(total, len(f.read("strv.Concat"))); !ok {
			return lengthOverflow("strv.Concat")
		}
	}
	if total == 0 {
		Clear(dst)
		return nil
	}

	buf, err := newBuffer("strv.Concat", total)
	if err != nil {
		return err
	}
	pos := 0
	for _, f := range fragments {
		pos += copy(buf.b[pos:], f.data)
	}
	assign(dst, buf, total)
	return nil
}

// Join replaces *dst with the fragments separated by delim. Empty fragments
// keep their position, so N fragments always produce N-1 delimiters. The
// delimiter and the fragments may alias *dst. When the result is empty *dst
// is cleared; on failure it is unchanged.
func Join(dst *Value, delim Value, fragments []Value) error {
	if len(fragments) == 0 {
		Clear(dst)
		return nil
	}

	sep := delim.read("strv.Join")
	total, ok := 0, true
	for i, f := range fragments {
		if i > 0 {
			total, ok = addLen(total, len(sep))
		}
		if ok {
			total, ok = addLen(total, len(f.read("strv.Join")))
		}
		if !ok {
			return lengthOverflow("strv.Join")
		}
	}
	if total == 0 {
		Clear(dst)
		return nil
	}

	buf, err := newBuffer("strv.Join", total)
	if err != nil {
		return err
	}
	pos := copy(buf.b, fragments[0].data)
	for _, f := range fragments[1:] {
		pos += copy(buf.b[pos:], sep)
		pos += copy(buf.b[pos:], f.data)
	}
	assign(dst, buf, total)
	return nil
}

// addLen returns total+n. It fails when the sum, plus the terminator every
// owned buffer carries, would not fit an int.
func addLen(total, n int) (int, bool) {
	if n > math.MaxInt-1-total {
		return 0, false
	}
	return total + n, true
}

// lengthOverflow reports a result too long to allocate. The target is left
// unchanged.
func lengthOverflow(operation string) error {
	err := errors.StrvAllocationFailed(operation, math.MaxInt, nil)
	logAllocationFailure(err)
	return err
}
