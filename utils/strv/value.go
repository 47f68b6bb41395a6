// File: value.go
// Title: String Value
// Description: The Value type with reference and owned forms, ownership
//              transfer, release and read accessors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strv

import (
	"bytes"
	"unsafe"

	"github.com/msto63/strv/core/errors"
)

// Value is a byte string that either references memory owned elsewhere or
// owns a buffer obtained from an Allocator. The zero Value is Null.
type Value struct {
	data  []byte
	buf   *buffer
	owner bool
}

// buffer is the allocation behind owned values. It is never reused after
// release, so a stale Value can always tell that its bytes are gone.
type buffer struct {
	b        []byte // len(b) == length+1, b[length] == 0
	alloc    Allocator
	released bool
}

// Null is the empty, non-owning value with no data pointer. It must not be
// reassigned.
var Null = Value{}

var emptyData = make([]byte, 0)

// Lit returns a reference to the bytes of s without copying
func Lit(s string) Value {
	if len(s) == 0 {
		return Value{data: emptyData}
	}
	return Value{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Ref returns a reference to b. The length is len(b); spare capacity
// stays reachable through End.
func Ref(b []byte) Value {
	return Value{data: b}
}

// RefC returns a reference to the bytes of b up to the first zero byte, or
// to all of b when it has none.
func RefC(b []byte) Value {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return Value{data: b[:i]}
	}
	return Value{data: b}
}

// Ref returns a non-owning alias of v
func (v Value) Ref() Value {
	return Value{data: v.data, buf: v.buf}
}

// Acquire takes ownership of b. The length is the index of the first zero
// byte, or len(b) when there is none; in that case the terminator is
// written into spare capacity, or b is copied into a buffer one byte
// longer when it has no spare capacity. An empty nil slice yields Null.
func Acquire(b []byte) Value {
	if b == nil {
		return Null
	}

	n := bytes.IndexByte(b, 0)
	switch {
	case n >= 0:
		b = b[:n+1]
	case cap(b) > len(b):
		n = len(b)
		b = b[:n+1]
		b[n] = 0
	default:
		n = len(b)
		grown := make([]byte, n+1)
		copy(grown, b)
		b = grown
	}

	buf := &buffer{b: b}
	return Value{data: buf.b[:n], buf: buf, owner: true}
}

// Copy replaces *dst with an owned copy of src. The buffer previously owned
// by *dst is released after the copy, so src may alias *dst. Copying an
// empty value clears *dst. On failure *dst is unchanged.
func Copy(dst *Value, src Value) error {
	data := src.read("strv.Copy")
	if len(data) == 0 {
		Clear(dst)
		return nil
	}

	buf, err := newBuffer("strv.Copy", len(data))
	if err != nil {
		return err
	}
	copy(buf.b, data)
	assign(dst, buf, len(data))
	return nil
}

// Free releases the buffer owned by v. It does nothing for references and
// does not reset v; use Clear for that.
func Free(v Value) {
	if !v.owner || v.buf == nil {
		return
	}
	if v.buf.released {
		panic(errors.StrvDoubleFree("strv.Free"))
	}
	v.buf.released = true
	if v.buf.alloc != nil {
		v.buf.alloc.Release(v.buf.b)
	}
	v.buf.b = nil
}

// Clear frees *v and resets it to Null. A nil pointer is ignored.
func Clear(v *Value) {
	if v == nil {
		return
	}
	Free(*v)
	*v = Null
}

// Move returns *src and resets *src to Null, transferring ownership
func Move(src *Value) Value {
	out := *src
	*src = Null
	return out
}

// Pass returns *src and turns *src into a reference to the same bytes.
// The reference stays readable until the new owner is freed.
func Pass(src *Value) Value {
	out := *src
	src.owner = false
	return out
}

// IsOwner reports whether v owns its buffer
func (v Value) IsOwner() bool {
	return v.owner
}

// IsRef reports whether v is a reference
func (v Value) IsRef() bool {
	return !v.owner
}

// IsEmpty reports whether v has zero length
func (v Value) IsEmpty() bool {
	return len(v.data) == 0
}

// IsNull reports whether v is Null. Lit("") is empty but not Null.
func (v Value) IsNull() bool {
	return v.data == nil && !v.owner
}

// Len returns the length of v in bytes
func (v Value) Len() int {
	return len(v.data)
}

// End returns a pointer to the byte just past the last byte of v. For owned
// values that byte is the zero terminator, and references made by RefC or Ref
// over a buffer with spare room also reach it. Null and references over Go
// strings made by Lit have no terminator, so End returns nil for them; the
// same holds for any reference whose slice has no capacity past its length.
func (v Value) End() *byte {
	d := v.read("strv.End")
	if cap(d) <= len(d) {
		return nil
	}
	return &d[:len(d)+1][len(d)]
}

// Bytes returns the bytes of v without copying. The result must not be
// modified; appending to it always reallocates.
func (v Value) Bytes() []byte {
	d := v.read("strv.Bytes")
	return d[:len(d):len(d)]
}

// String returns a copy of v as a Go string
func (v Value) String() string {
	return string(v.read("strv.String"))
}

// UnsafeString returns v as a string sharing its bytes. The string is only
// valid while the bytes of v are alive and unchanged.
func (v Value) UnsafeString() string {
	d := v.read("strv.UnsafeString")
	if len(d) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(d), len(d))
}

// read returns the bytes of v, panicking when its buffer was released
func (v Value) read(operation string) []byte {
	if v.buf != nil && v.buf.released {
		panic(errors.StrvUseAfterFree(operation))
	}
	return v.data
}

// newBuffer allocates room for n bytes plus the terminator from the
// default allocator.
func newBuffer(operation string, n int) (*buffer, error) {
	alloc := DefaultAllocator()
	b, err := alloc.Allocate(n + 1)
	if err != nil {
		wrapped := errors.StrvAllocationFailed(operation, n+1, err)
		logAllocationFailure(wrapped)
		return nil, wrapped
	}
	b = b[:n+1]
	b[n] = 0
	return &buffer{b: b, alloc: alloc}, nil
}

// assign installs buf as the new owned content of *dst and releases what
// *dst owned before.
func assign(dst *Value, buf *buffer, n int) {
	old := *dst
	*dst = Value{data: buf.b[:n], buf: buf, owner: true}
	Free(old)
}
