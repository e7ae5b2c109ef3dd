package freelist

import "unsafe"

// header is K&R's "Header" union turned into a plain Go struct: one unit
// wide, immediately preceding every block's payload. next is meaningful
// only while the block sits on the free list; size always counts total
// block units, including this header.
type header struct {
	next *header
	size uintptr
}

// unit is the atomic size quantum of the allocator: the byte size of a
// single header. Every block's size is expressed as a count of units.
const unit = unsafe.Sizeof(header{})

// addr converts a *header to a plain integer address, needed because Go forbids ordering comparisons between
// pointers but the free-list search and coalescing logic are fundamentally
// address-order algorithms.
func addr(h *header) uintptr {
	return uintptr(unsafe.Pointer(h))
}

// payloadOf returns the payload address one unit past h, the only place a
// *header is turned into the pointer handed back to a caller.
func payloadOf(h *header) unsafe.Pointer {
	return unsafe.Pointer(addr(h) + unit)
}

// headerOf returns the header immediately preceding a payload pointer —
// the fundamental unsafe operation of the allocator (see Design Note 9 in
// SPEC_FULL.md): every other operation is expressed in terms of *header
// values derived from this one conversion.
func headerOf(p unsafe.Pointer) *header {
	return (*header)(unsafe.Pointer(uintptr(p) - unit))
}
