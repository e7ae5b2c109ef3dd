// Package align provides pure integer alignment and padding arithmetic used
// by the aligned allocation facade and the free-list allocator.
//
// Every function here operates on unsigned machine words (uintptr) and
// assumes its alignment argument is a power of two. Violating that
// precondition is a programmer error: the functions panic via assertPow2
// rather than silently returning a wrong answer, mirroring the assert()
// calls in the C implementation these primitives are ported from.
package align

import "unsafe"

// A is the platform's maximum fundamental alignment: the strictest
// alignment any scalar type may require. Go has no max_align_t, so A is
// derived the way allocator code commonly derives it — from the alignment
// of the widest builtin scalar, complex128.
const A = uintptr(unsafe.Alignof(struct{ _ complex128 }{}))

func assertPow2(alignment uintptr) {
	if !IsPowerOfTwo(alignment) {
		panic("align: alignment must be a non-zero power of two")
	}
}

// IsPowerOfTwo reports whether v is a non-zero power of two.
func IsPowerOfTwo(v uintptr) bool {
	return v != 0 && (v&(v-1)) == 0
}

// Offset returns v mod alignment, computed as v & (alignment-1).
func Offset(v, alignment uintptr) uintptr {
	assertPow2(alignment)
	return v & (alignment - 1)
}

// IsAligned reports whether v is a multiple of alignment.
func IsAligned(v, alignment uintptr) bool {
	assertPow2(alignment)
	return Offset(v, alignment) == 0
}

// Up returns the smallest multiple of alignment that is >= v. If rounding
// up would overflow the machine word, the result saturates to the largest
// representable value that is itself a multiple of alignment.
func Up(v, alignment uintptr) uintptr {
	assertPow2(alignment)
	if v > ^uintptr(0)-(alignment-1) {
		// v + alignment - 1 would overflow; saturate to the top multiple.
		return Down(^uintptr(0), alignment)
	}
	return (v + alignment - 1) &^ (alignment - 1)
}

// Down returns the largest multiple of alignment that is <= v.
func Down(v, alignment uintptr) uintptr {
	assertPow2(alignment)
	return v &^ (alignment - 1)
}

// PaddingNeeded returns the number of bytes needed to advance v up to the
// next multiple of alignment, or zero if v is already aligned.
func PaddingNeeded(v, alignment uintptr) uintptr {
	assertPow2(alignment)
	offset := Offset(v, alignment)
	if offset == 0 {
		return 0
	}
	return alignment - offset
}

// UnitCount returns the number of objects of size objectSize required to
// cover v bytes once v has been rounded up to alignment. objectSize must
// be greater than zero.
func UnitCount(v, objectSize, alignment uintptr) uintptr {
	if objectSize == 0 {
		panic("align: objectSize must be > 0")
	}
	aligned := Up(v, alignment)
	return (aligned + objectSize - 1) / objectSize
}

// UpPagesize is equivalent to Up(v, P) where P is the platform's page size.
func UpPagesize(v uintptr) uintptr {
	return Up(v, uintptr(PageSize()))
}
