//go:build windows

package aligned

import "golang.org/x/sys/windows"

// platformBackend reserves and commits memory with VirtualAlloc /
// VirtualFree, mirroring modernc.org/memory's mmap_windows.go (vendored in
// the teacher repo at lib/others/memory/mmap_windows.go), but through
// golang.org/x/sys/windows instead of that file's raw
// syscall.NewLazyDLL("kernel32.dll") calls. VirtualAlloc's allocation
// granularity (64 KiB on every supported Windows release) already exceeds
// every alignment this facade accepts, so no further alignment
// massaging — VirtualAlloc2-style address requirements — is needed.
type platformBackend struct{}

func (platformBackend) rawAlloc(size int) (uintptr, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return 0, err
	}
	return addr, nil
}

func (platformBackend) rawFree(base uintptr, size int) error {
	return windows.VirtualFree(base, 0, windows.MEM_RELEASE)
}
