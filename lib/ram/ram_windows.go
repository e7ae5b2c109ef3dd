//go:build windows

package ram

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// platformQuerier backs Total/Free with GlobalMemoryStatusEx, mirroring
// modernc.org/memory's mmap_windows.go, which already pulls kernel32
// memory-management calls in on Windows.
type platformQuerier struct{}

func memoryStatus() (windows.MemoryStatusEx, bool) {
	var status windows.MemoryStatusEx
	status.Length = uint32(unsafe.Sizeof(status))
	if err := windows.GlobalMemoryStatusEx(&status); err != nil {
		return windows.MemoryStatusEx{}, false
	}
	return status, true
}

func (platformQuerier) total() (uint64, bool) {
	status, ok := memoryStatus()
	if !ok {
		return 0, false
	}
	return status.TotalPhys, true
}

func (platformQuerier) free() (uint64, bool) {
	status, ok := memoryStatus()
	if !ok {
		return 0, false
	}
	return status.AvailPhys, true
}
