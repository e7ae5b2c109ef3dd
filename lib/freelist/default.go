package freelist

import "unsafe"

// def backs the package-level functions below. Design Note 9
// (SPEC_FULL.md / spec.md §9) describes the original K&R global API as "a
// thin wrapper over a singleton handle" in any language without a natural
// global-state idiom; this is that wrapper.
var def = NewAllocator()

// Initialize ensures the default allocator's sentinel exists.
func Initialize() error { return def.Initialize() }

// Terminate tears down the default allocator.
func Terminate() error { return def.Terminate() }

// Malloc allocates from the default allocator.
func Malloc(n uintptr) unsafe.Pointer { return def.Malloc(n) }

// Free returns a block to the default allocator.
func Free(p unsafe.Pointer) { def.Free(p) }

// Dump introspects the default allocator's free list.
func Dump() []Block { return def.Dump() }
