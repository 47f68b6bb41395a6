// File: alloc.go
// Title: Buffer Allocators
// Description: Allocator abstraction behind owned values with a heap
//              allocator, a size-class pool allocator and a limiting
//              allocator that bounds outstanding bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strv

import (
	"math/bits"
	"sync"
	"sync/atomic"

	"fortio.org/safecast"

	mdwerror "github.com/msto63/strv/core/error"
)

// ErrAllocationFailed matches every allocation failure reported by this
// package through errors.Is.
var ErrAllocationFailed = mdwerror.New("allocation failed").WithCode(mdwerror.CodeAllocationFailed)

// ErrDoubleFree and ErrUseAfterFree match the values recovered from the
// panics raised on ownership violations.
var (
	ErrDoubleFree   = mdwerror.New("double free").WithCode(mdwerror.CodeDoubleFree)
	ErrUseAfterFree = mdwerror.New("use after free").WithCode(mdwerror.CodeUseAfterFree)
)

// Allocator provides and takes back the buffers of owned values.
// Allocate must return a slice of length n. Release receives exactly the
// slice Allocate returned and is called once per allocation.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Release(b []byte)
}

// HeapAllocator allocates with make and leaves release to the garbage collector
type HeapAllocator struct{}

// Allocate returns a new zeroed slice of length n
func (HeapAllocator) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrAllocationFailed
	}
	return make([]byte, n), nil
}

// Release does nothing
func (HeapAllocator) Release([]byte) {}

const (
	minClassBits = 4
	// DefaultPoolMaxClassBits bounds pooled buffers to 64 KiB
	DefaultPoolMaxClassBits = 16
	maxPoolClassBits        = 30
)

// PoolAllocator recycles buffers in power-of-two size classes. Requests
// larger than the biggest class are served from the heap and dropped on
// release. A PoolAllocator is safe for concurrent use.
type PoolAllocator struct {
	maxBits int
	pools   []sync.Pool
}

// NewPoolAllocator creates a pool allocator whose largest class holds
// 1<<maxClassBits bytes. Values outside [4, 30] are clamped.
func NewPoolAllocator(maxClassBits int) *PoolAllocator {
	if maxClassBits < minClassBits {
		maxClassBits = minClassBits
	}
	if maxClassBits > maxPoolClassBits {
		maxClassBits = maxPoolClassBits
	}

	p := &PoolAllocator{
		maxBits: maxClassBits,
		pools:   make([]sync.Pool, maxClassBits+1),
	}
	for class := minClassBits; class <= maxClassBits; class++ {
		size := 1 << class
		p.pools[class].New = func() interface{} {
			return make([]byte, size)
		}
	}
	return p
}

// MaxClassBits returns the exponent of the largest pooled size class
func (p *PoolAllocator) MaxClassBits() int {
	return p.maxBits
}

// Allocate returns a slice of length n, reusing a pooled buffer when n fits
// one of the size classes. Reused buffers are not zeroed.
func (p *PoolAllocator) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrAllocationFailed
	}
	class := sizeClass(n)
	if class > p.maxBits {
		return make([]byte, n), nil
	}
	buf := p.pools[class].Get().([]byte)
	return buf[:n], nil
}

// Release returns b to its size class. Slices that did not come from a
// class are ignored.
func (p *PoolAllocator) Release(b []byte) {
	c := cap(b)
	if c < 1<<minClassBits || c&(c-1) != 0 {
		return
	}
	class := bits.TrailingZeros(uint(c))
	if class > p.maxBits {
		return
	}
	p.pools[class].Put(b[:c])
}

func sizeClass(n int) int {
	if n <= 1<<minClassBits {
		return minClassBits
	}
	return bits.Len(uint(n - 1))
}

// LimitAllocator fails requests once the bytes handed out and not yet
// released would exceed a fixed limit. It is safe for concurrent use.
type LimitAllocator struct {
	parent      Allocator
	limit       int64
	outstanding atomic.Int64
}

// NewLimitAllocator wraps parent with a limit on outstanding bytes.
// A nil parent means HeapAllocator.
func NewLimitAllocator(parent Allocator, limit int64) *LimitAllocator {
	if parent == nil {
		parent = HeapAllocator{}
	}
	return &LimitAllocator{parent: parent, limit: limit}
}

// Allocate reserves n bytes against the limit and delegates to the parent
func (l *LimitAllocator) Allocate(n int) ([]byte, error) {
	size, err := safecast.Conv[uint64](n)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid allocation size").WithCode(mdwerror.CodeAllocationFailed)
	}
	want := int64(size)

	for {
		cur := l.outstanding.Load()
		if want > l.limit-cur {
			return nil, mdwerror.Newf("limit of %d bytes exceeded", l.limit).
				WithCode(mdwerror.CodeAllocationFailed).
				WithDetail("outstanding", cur).
				WithDetail("requested", want)
		}
		if l.outstanding.CompareAndSwap(cur, cur+want) {
			break
		}
	}

	b, err := l.parent.Allocate(n)
	if err != nil {
		l.outstanding.Add(-want)
		return nil, err
	}
	return b, nil
}

// Release gives the bytes of b back to the limit and to the parent
func (l *LimitAllocator) Release(b []byte) {
	l.outstanding.Add(-int64(len(b)))
	l.parent.Release(b)
}

// Outstanding returns the bytes currently allocated and not released
func (l *LimitAllocator) Outstanding() int64 {
	return l.outstanding.Load()
}

// Limit returns the configured limit in bytes
func (l *LimitAllocator) Limit() int64 {
	return l.limit
}

type allocatorHolder struct {
	a Allocator
}

var defaultAllocator atomic.Pointer[allocatorHolder]

func init() {
	defaultAllocator.Store(&allocatorHolder{a: HeapAllocator{}})
}

// DefaultAllocator returns the allocator used by Copy, Concat and Join
func DefaultAllocator() Allocator {
	return defaultAllocator.Load().a
}

// SetDefaultAllocator installs a and returns the previous allocator. A nil
// allocator restores HeapAllocator. Buffers are always released to the
// allocator that produced them.
func SetDefaultAllocator(a Allocator) Allocator {
	if a == nil {
		a = HeapAllocator{}
	}
	return defaultAllocator.Swap(&allocatorHolder{a: a}).a
}
