// File: alloc_test.go
// Title: Allocator Tests
// Description: Tests for the heap, pool and limit allocators, the default
//              allocator swap and allocation failure handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package strv

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/msto63/strv/core/error"
	"github.com/msto63/strv/core/log"
)

// useAllocator installs a as the default allocator for the duration of t
func useAllocator(t *testing.T, a Allocator) {
	t.Helper()
	prev := SetDefaultAllocator(a)
	t.Cleanup(func() { SetDefaultAllocator(prev) })
}

// captureLog routes the package logger into a buffer for the duration of t
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetLogger(log.NewLogger(log.LoggerConfig{
		Name:   "strv",
		Level:  "debug",
		Format: "logfmt",
		Output: &buf,
	}))
	t.Cleanup(func() { SetLogger(prev) })
	return &buf
}

func TestHeapAllocator(t *testing.T) {
	b, err := HeapAllocator{}.Allocate(5)
	if err != nil || len(b) != 5 {
		t.Fatalf("Allocate(5) = %d bytes, %v", len(b), err)
	}
	HeapAllocator{}.Release(b)

	if _, err := (HeapAllocator{}).Allocate(-1); !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("Allocate(-1) error = %v, want ALLOCATION_FAILED", err)
	}
}

func TestPoolAllocator(t *testing.T) {
	tests := []struct {
		name    string
		maxBits int
		size    int
		wantCap int
	}{
		{"smallest class", 8, 1, 16},
		{"exact class", 8, 16, 16},
		{"next class", 8, 17, 32},
		{"largest class", 8, 256, 256},
		{"heap fallback", 8, 257, 257},
		{"clamped low", 1, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPoolAllocator(tt.maxBits)
			b, err := p.Allocate(tt.size)
			if err != nil {
				t.Fatalf("Allocate(%d) error = %v", tt.size, err)
			}
			if len(b) != tt.size || cap(b) != tt.wantCap {
				t.Errorf("Allocate(%d) len %d cap %d, want cap %d", tt.size, len(b), cap(b), tt.wantCap)
			}
			p.Release(b)
		})
	}

	if got := NewPoolAllocator(99).MaxClassBits(); got != 30 {
		t.Errorf("MaxClassBits() = %d, want 30", got)
	}
	if got := NewPoolAllocator(0).MaxClassBits(); got != 4 {
		t.Errorf("MaxClassBits() = %d, want 4", got)
	}

	p := NewPoolAllocator(8)
	p.Release(make([]byte, 3))
	p.Release(make([]byte, 24))
	p.Release(make([]byte, 1024))
	if _, err := p.Allocate(-1); !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("Allocate(-1) error = %v", err)
	}
}

func TestLimitAllocator(t *testing.T) {
	l := NewLimitAllocator(nil, 10)
	if l.Limit() != 10 {
		t.Errorf("Limit() = %d", l.Limit())
	}

	a, err := l.Allocate(6)
	if err != nil {
		t.Fatalf("Allocate(6) error = %v", err)
	}
	if l.Outstanding() != 6 {
		t.Errorf("Outstanding() = %d, want 6", l.Outstanding())
	}

	if _, err := l.Allocate(5); !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("Allocate(5) over limit error = %v", err)
	}
	if l.Outstanding() != 6 {
		t.Errorf("failed allocation must not count, Outstanding() = %d", l.Outstanding())
	}

	b, err := l.Allocate(4)
	if err != nil {
		t.Fatalf("Allocate(4) error = %v", err)
	}
	l.Release(a)
	l.Release(b)
	if l.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d after release, want 0", l.Outstanding())
	}

	_, err = l.Allocate(-3)
	if !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("Allocate(-3) error = %v", err)
	}
}

func TestLimitAllocatorConcurrent(t *testing.T) {
	l := NewLimitAllocator(NewPoolAllocator(10), 1<<20)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				b, err := l.Allocate(1 + i%100)
				if err != nil {
					t.Errorf("Allocate() error = %v", err)
					return
				}
				l.Release(b)
			}
		}()
	}
	wg.Wait()

	if l.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d, want 0", l.Outstanding())
	}
}

func TestSetDefaultAllocator(t *testing.T) {
	pool := NewPoolAllocator(8)
	prev := SetDefaultAllocator(pool)
	defer SetDefaultAllocator(prev)

	if DefaultAllocator() != Allocator(pool) {
		t.Error("DefaultAllocator() should return the installed allocator")
	}
	if got := SetDefaultAllocator(nil); got != Allocator(pool) {
		t.Error("SetDefaultAllocator() should return the previous allocator")
	}
	if _, ok := DefaultAllocator().(HeapAllocator); !ok {
		t.Error("a nil allocator should restore HeapAllocator")
	}
}

func TestAllocationFailureLeavesTargetUnchanged(t *testing.T) {
	logs := captureLog(t)
	limit := NewLimitAllocator(nil, 8)
	useAllocator(t, limit)

	var s Value
	if err := Copy(&s, Lit("abc")); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if limit.Outstanding() != 4 {
		t.Errorf("Outstanding() = %d, want 4", limit.Outstanding())
	}

	long := Lit("0123456789")
	tests := []struct {
		name string
		fn   func() error
	}{
		{"copy", func() error { return Copy(&s, long) }},
		{"concat", func() error { return Concat(&s, []Value{s, long}) }},
		{"join", func() error { return Join(&s, Lit(","), []Value{s, s, s}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if !errors.Is(err, ErrAllocationFailed) {
				t.Fatalf("error = %v, want ALLOCATION_FAILED", err)
			}
			if !mdwerror.HasCode(err, mdwerror.CodeAllocationFailed) {
				t.Errorf("error code = %v", mdwerror.GetCode(err))
			}
			if s.String() != "abc" || !s.IsOwner() {
				t.Errorf("target changed to %q", s.String())
			}
		})
	}

	if !strings.Contains(logs.String(), "allocation failed") {
		t.Errorf("expected a warning in the log, got %q", logs.String())
	}

	Clear(&s)
	if limit.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d after Clear, want 0", limit.Outstanding())
	}
}

func TestPooledValuesAreIndependent(t *testing.T) {
	useAllocator(t, NewPoolAllocator(8))

	var a, b Value
	if err := Copy(&a, Lit("first")); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	Clear(&a)
	if err := Copy(&b, Lit("second")); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if err := Copy(&a, Lit("third")); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if b.String() != "second" || a.String() != "third" {
		t.Errorf("a = %q, b = %q", a.String(), b.String())
	}
	if end := b.End(); end == nil || *end != 0 {
		t.Error("recycled buffers must still be terminated")
	}
	Clear(&a)
	Clear(&b)
}
