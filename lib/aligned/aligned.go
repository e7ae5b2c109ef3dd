// Package aligned is a thin facade over the platform's page-granular
// memory mapping calls, presenting the classic C aligned-allocation
// quartet: Alloc, Calloc, Realloc, Free. It is the only interface the
// free-list allocator (lib/freelist) uses to obtain raw memory from the
// platform, mirroring original_source/src/core/memory.c's
// memory_aligned_alloc family and, for the backing technique itself,
// modernc.org/memory's mmap_unix.go / mmap_windows.go (vendored at
// lib/others/memory in the teacher repo).
package aligned

import (
	"sync"
	"unsafe"

	"github.com/teleprint-me/attica/internal/diag"
	"github.com/teleprint-me/attica/lib/align"
)

// rawBackend is satisfied by aligned_unix.go and aligned_windows.go. Both
// return memory aligned to at least the platform page size, which is why
// Alloc refuses alignments larger than align.PageSize(): a caller wanting
// coarser alignment than a full page is outside the domain this facade
// was built for (the free-list allocator never requests more than
// align.A, a handful of bytes).
type rawBackend interface {
	rawAlloc(size int) (uintptr, error)
	rawFree(base uintptr, size int) error
}

var backend rawBackend = platformBackend{}

// outstanding tracks every live allocation's mapped size, keyed by the
// base address handed back to the caller, so Free — which the classic C
// contract gives no size argument — can recover how much to unmap. This
// mirrors piotrnar-gocoin's lib/others/memory.Allocator.regs bookkeeping
// map, used there for exactly the same reason.
var (
	outstandingMu sync.Mutex
	outstanding   = map[uintptr]uintptr{}
)

func track(base, size uintptr) {
	outstandingMu.Lock()
	outstanding[base] = size
	outstandingMu.Unlock()
}

func untrack(base uintptr) (uintptr, bool) {
	outstandingMu.Lock()
	size, ok := outstanding[base]
	if ok {
		delete(outstanding, base)
	}
	outstandingMu.Unlock()
	return size, ok
}

func normalizeAlignment(alignment uintptr) (uintptr, bool) {
	if alignment < unsafe.Sizeof(uintptr(0)) {
		alignment = unsafe.Sizeof(uintptr(0))
	}
	if !align.IsPowerOfTwo(alignment) {
		return 0, false
	}
	if alignment > uintptr(align.PageSize()) {
		return 0, false
	}
	return alignment, true
}

// Alloc returns an alignment-aligned pointer to size bytes, or nil on
// failure. alignment is raised to sizeof(uintptr) if smaller and must
// otherwise be a power of two no larger than the platform page size.
func Alloc(size, alignment uintptr) unsafe.Pointer {
	if _, ok := normalizeAlignment(alignment); !ok {
		diag.Errorf("aligned: invalid alignment %d", alignment)
		return nil
	}
	if size == 0 {
		return nil
	}

	mapped := align.UpPagesize(size)
	base, err := backend.rawAlloc(int(mapped))
	if err != nil {
		diag.Errorf("aligned: rawAlloc(%d) failed: %v", mapped, err)
		return nil
	}
	// base is page-aligned by construction, and alignment <= page size,
	// so base already satisfies the caller's alignment.
	track(base, mapped)
	return unsafe.Pointer(base)
}

// Calloc is like Alloc but zeroes n*size bytes before returning.
func Calloc(n, size, alignment uintptr) unsafe.Pointer {
	total := n * size
	p := Alloc(total, alignment)
	if p == nil {
		return nil
	}
	zero(p, total)
	return p
}

func zero(p unsafe.Pointer, n uintptr) {
	b := unsafe.Slice((*byte)(p), int(n))
	for i := range b {
		b[i] = 0
	}
}

// Realloc resizes the allocation at p from oldSize to newSize bytes,
// preserving min(oldSize, newSize) bytes of content. If p is nil it
// behaves like Alloc; if newSize is zero it frees p and returns nil. On
// allocation failure the original p is left untouched and nil is
// returned.
func Realloc(p unsafe.Pointer, oldSize, newSize, alignment uintptr) unsafe.Pointer {
	if p == nil {
		return Alloc(newSize, alignment)
	}
	if newSize == 0 {
		Free(p)
		return nil
	}

	newPtr := Alloc(newSize, alignment)
	if newPtr == nil {
		return nil
	}

	n := oldSize
	if newSize < n {
		n = newSize
	}
	copy(unsafe.Slice((*byte)(newPtr), int(n)), unsafe.Slice((*byte)(p), int(n)))
	Free(p)
	return newPtr
}

// Free releases memory obtained from Alloc, Calloc or Realloc. It accepts
// nil as a no-op.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	base := uintptr(p)
	size, ok := untrack(base)
	if !ok {
		diag.Errorf("aligned: free of untracked pointer %#x", base)
		return
	}
	if err := backend.rawFree(base, int(size)); err != nil {
		diag.Errorf("aligned: rawFree(%#x, %d) failed: %v", base, size, err)
	}
}
