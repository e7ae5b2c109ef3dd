//go:build darwin || dragonfly || freebsd || linux || openbsd || solaris || netbsd

package aligned

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// platformBackend maps anonymous, page-aligned memory with
// golang.org/x/sys/unix.Mmap/Munmap. This is the same mmap(2)-based
// technique as modernc.org/memory's mmap_unix.go (vendored in the teacher
// repo at lib/others/memory/mmap_unix.go), swapped from raw
// syscall.Syscall(SYS_MMAP, ...) to the ecosystem-preferred
// golang.org/x/sys/unix wrapper, the same package
// joshuapare-hivekit reaches for on its unix-specific files.
type platformBackend struct{}

func (platformBackend) rawAlloc(size int) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, err
	}
	return uintptr(unsafe.Pointer(&b[0])), nil
}

func (platformBackend) rawFree(base uintptr, size int) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(base)), size)
	return unix.Munmap(b)
}
