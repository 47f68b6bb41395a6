// File: doc.go
// Title: Package Documentation for strv
// Description: Package strv provides owner/reference string values with
//              explicit ownership, byte-wise comparison, in-place range
//              algorithms, a delimiter tokenizer and pattern partitioning.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

// Package strv provides owner/reference string values.
//
// Package: strv
// Title: Owner/Reference String Values
// Description: A Value is either a zero-copy view into bytes owned by
//              someone else (a reference) or the single owner of a buffer
//              obtained from an Allocator. Ownership moves explicitly and
//              every owned buffer is released exactly once.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Overview
//
// Value is a small struct that is passed by value. It carries a read-only
// byte view with an explicit length and an ownership tag. The zero Value is
// Null: empty, non-owning, and without a data pointer.
//
// References are produced by Lit, Ref, RefC and (Value).Ref. They never
// allocate and never free; the bytes they point to must outlive them.
// Owned values are produced by Acquire, Copy, Concat and Join. An owned
// buffer always carries one zero byte past the logical length, reachable
// through End.
//
// Ownership rules:
//   - Free releases the buffer of an owner and is a no-op for references
//   - Clear frees and resets the variable to Null
//   - Move hands ownership over and leaves the source as Null
//   - Pass hands ownership over and leaves the source as a reference
//
// Releasing the same buffer twice panics with a DOUBLE_FREE error and reading
// a value whose buffer was released panics with a USE_AFTER_FREE error. Other
// caller contracts, such as keeping referenced bytes alive or sorting before
// searching, are not checked.
//
// Architecture
//
// The package is organized into functional groups:
//
//   - Values: construction, ownership transfer and accessors (value.go)
//   - Allocation: heap, pooled and limited allocators (alloc.go)
//   - Comparison: exact and ASCII case-folded ordering (compare.go)
//   - Construction: Concat and Join into a target value (build.go)
//   - Ranges: sort, search, partition and unique over []Value (ranges.go)
//   - Tokenizer: delimiter-set tokenization (tokenizer.go)
//   - Pattern partition: split around the first match (partition.go)
//   - Encoding: text, YAML, MessagePack and CBOR codecs (codec.go)
//   - Settings: allocator and logger setup from configuration (settings.go)
//
// Usage Examples
//
// Building and releasing an owned value:
//
//	var s strv.Value
//	if err := strv.Join(&s, strv.Lit(", "), strv.Values("a", "b", "c")); err != nil {
//		return err
//	}
//	defer strv.Clear(&s)
//	fmt.Println(s) // a, b, c
//
// Tokenizing without copying:
//
//	tok := strv.NewTokenizer(strv.Lit("aaa;=~bbb~,=ccc="), strv.Lit(",;=~"))
//	for t := range tok.All() {
//		fmt.Println(t)
//	}
//
// Configuring the allocator:
//
//	settings, err := strv.LoadSettings("strv.toml")
//	if err != nil {
//		return err
//	}
//	if err := strv.Apply(settings); err != nil {
//		return err
//	}
//
// Thread Safety
//
// Values carry no locks. Reading a value from several goroutines is safe;
// mutating one needs exclusive access. The allocators and the default
// allocator and logger swaps are safe for concurrent use.
package strv
