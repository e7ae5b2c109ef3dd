// Package freelist implements the K&R §8.7 circular free-list allocator:
// a single-threaded, first-fit allocator over memory obtained from
// lib/aligned, with bidirectional coalescing on free and heap growth on
// exhaustion.
//
// The allocator has no internal synchronization — concurrent calls from
// multiple goroutines are not safe, by design (see SPEC_FULL.md §5).
// Callers needing concurrency must serialize externally.
package freelist

import (
	"errors"
	"unsafe"

	"github.com/teleprint-me/attica/internal/diag"
	"github.com/teleprint-me/attica/lib/align"
	"github.com/teleprint-me/attica/lib/aligned"
	"github.com/teleprint-me/attica/lib/ram"
)

// Sentinel errors matching the taxonomy in SPEC_FULL.md / spec.md §7.
var (
	ErrOutOfMemory   = errors.New("freelist: platform allocator refused the request")
	ErrUninitialized = errors.New("freelist: terminate called before initialize")
)

// Block is one node's introspection snapshot, returned by Dump.
type Block struct {
	Addr  uintptr
	Units uintptr
	Next  uintptr
}

// Allocator is an explicit free-list handle. Its zero value is
// uninitialized; call Initialize before the first Malloc, or rely on
// Malloc's lazy, idempotent initialization (SPEC_FULL.md §3 Lifecycle).
//
// Allocs and GrowthBytes are running counters in the same spirit as
// piotrnar-gocoin's lib/others/memory.Allocator.Allocs/Bytes fields —
// useful for diagnostics, not load-bearing for correctness.
type Allocator struct {
	base *header // sentinel; base.size == 0 once initialized
	head *header // rolling first-fit cursor

	Allocs      int
	GrowthBytes uintptr
}

// NewAllocator returns an uninitialized handle. Equivalent to new(Allocator).
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Initialize ensures the sentinel exists and the head points at it. It is
// idempotent: calling it again after a successful call is a no-op.
func (a *Allocator) Initialize() error {
	if a.head != nil {
		return nil
	}

	p := aligned.Alloc(unit, align.A)
	if p == nil {
		diag.Errorf("freelist: failed to allocate sentinel")
		return ErrOutOfMemory
	}

	base := (*header)(p)
	base.next = base
	base.size = 0
	a.base = base
	a.head = base
	return nil
}

// Terminate walks the free list from base.next, freeing every
// non-sentinel node back to the platform allocator, then frees the
// sentinel itself and clears the allocator's state. Safe to call after a
// failed Initialize (returns ErrUninitialized). After a successful
// Terminate, the allocator may be initialized again.
func (a *Allocator) Terminate() error {
	if a.head == nil {
		return ErrUninitialized
	}

	for cur := a.base.next; cur != a.base; {
		next := cur.next
		aligned.Free(unsafe.Pointer(cur))
		cur = next
	}
	aligned.Free(unsafe.Pointer(a.base))

	a.base = nil
	a.head = nil
	a.Allocs = 0
	a.GrowthBytes = 0
	return nil
}

// sizeToUnits converts a byte request into a unit count that includes the
// header: payload bytes are rounded up to A, converted to whole header
// units, plus one unit for the header itself.
func sizeToUnits(n uintptr) uintptr {
	payload := align.Up(n, align.A)
	payloadUnits := (payload + unit - 1) / unit
	return payloadUnits + 1
}

// Malloc returns a payload pointer whose address is A-aligned, naming at
// least n writable bytes. It fails (returns nil) if n is zero, if n
// exceeds ram.Max(), or if heap growth cannot satisfy the request. On
// failure the free list is left unchanged.
func (a *Allocator) Malloc(n uintptr) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	if uint64(n) > ram.Max() {
		diag.Errorf("freelist: request of %d bytes exceeds ram.Max() %d", n, ram.Max())
		return nil
	}
	if err := a.Initialize(); err != nil {
		return nil
	}

	units := sizeToUnits(n)
	p := a.malloc(units)
	if p != nil {
		a.Allocs++
	}
	return p
}

// malloc is the first-fit search, splitting the fitting block's tail when
// it is larger than required and growing the heap when the whole list has
// been scanned without a fit (SPEC_FULL.md / spec.md §4.4).
func (a *Allocator) malloc(units uintptr) unsafe.Pointer {
	previous := a.head
	for {
		current := previous.next

		if current.size >= units {
			var result *header
			if current.size == units {
				// Exact fit: unlink current entirely.
				previous.next = current.next
				a.head = previous
				result = current
			} else {
				// Oversize fit: carve the allocation from the tail.
				tail := (*header)(unsafe.Pointer(addr(current) + (current.size-units)*unit))
				current.size -= units
				tail.size = units
				a.head = current
				result = tail
			}
			return payloadOf(result)
		}

		if current == a.head {
			if !a.grow(units) {
				return nil
			}
			previous = a.head
			continue
		}

		previous = current
	}
}

// grow requests units worth of bytes from the aligned allocation facade,
// installs the result as a new header, and inserts it into the free list
// (coalescing with a neighbor if the platform happened to return adjacent
// memory).
func (a *Allocator) grow(units uintptr) bool {
	nbytes := units * unit
	p := aligned.Alloc(nbytes, align.A)
	if p == nil {
		diag.Errorf("freelist: heap growth of %d bytes failed", nbytes)
		return false
	}

	block := (*header)(p)
	block.size = units
	a.insert(block)
	a.GrowthBytes += nbytes
	return true
}

// Free returns the block owning p to the free list, coalescing with
// either immediate neighbor. Accepts nil as a no-op. Passing a pointer not
// obtained from Malloc, or one already freed, is undefined.
func (a *Allocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	if a.head == nil {
		diag.Errorf("freelist: free called on an uninitialized allocator")
		return
	}
	a.insert(headerOf(p))
	a.Allocs--
}

// insert performs the address-ordered insertion with bidirectional
// coalescing described in spec.md §4.4 "Insertion with coalescing on
// free" — the textbook K&R free() algorithm, translated from pointer
// comparisons to explicit uintptr address comparisons since Go forbids
// ordering two arbitrary pointers directly.
func (a *Allocator) insert(b *header) {
	c := a.head
	for !(addr(c) < addr(b) && addr(b) < addr(c.next)) {
		if addr(c) >= addr(c.next) && (addr(b) > addr(c) || addr(b) < addr(c.next)) {
			break
		}
		c = c.next
	}

	if addr(b)+b.size*unit == addr(c.next) {
		b.size += c.next.size
		b.next = c.next.next
	} else {
		b.next = c.next
	}

	if addr(c)+c.size*unit == addr(b) {
		c.size += b.size
		c.next = b.next
	} else {
		c.next = b
	}

	a.head = c
}

// Dump walks the free list starting at the sentinel and returns a
// snapshot of every node's (address, size in units, successor address).
// Intended for tests and diagnostics, not the allocation hot path.
func (a *Allocator) Dump() []Block {
	if a.head == nil {
		return nil
	}

	var blocks []Block
	for cur := a.base; ; {
		blocks = append(blocks, Block{Addr: addr(cur), Units: cur.size, Next: addr(cur.next)})
		cur = cur.next
		if cur == a.base {
			break
		}
	}
	return blocks
}
