// File: partition.go
// Title: Pattern Partition
// Description: Splits a value around the first occurrence of a pattern
//              into prefix and suffix references.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strv

import "bytes"

// PartitionAround finds the first occurrence of pattern in src. On success
// *prefix and *suffix are set to references to the bytes before and after
// the match and true is returned. The match is a plain byte search, so
// multi-byte UTF-8 sequences are treated as opaque runs.
//
// When pattern or src is empty, or pattern does not occur, PartitionAround
// returns false with *prefix set to src and *suffix set to Null. Nil
// pointers are skipped.
func PartitionAround(src, pattern Value, prefix, suffix *Value) bool {
	data := src.read("strv.PartitionAround")
	pat := pattern.read("strv.PartitionAround")

	i := -1
	if len(data) > 0 && len(pat) > 0 {
		i = bytes.Index(data, pat)
	}
	if i < 0 {
		if prefix != nil {
			*prefix = src.Ref()
		}
		if suffix != nil {
			*suffix = Null
		}
		return false
	}

	end := i + len(pat)
	if prefix != nil {
		*prefix = Value{data: data[:i:i], buf: src.buf}
	}
	if suffix != nil {
		*suffix = Value{data: data[end:], buf: src.buf}
	}
	return true
}
