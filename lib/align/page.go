package align

import "os"

// pageSize is resolved once via os.Getpagesize, the same call
// modernc.org/memory's mmap_unix.go and mmap_windows.go use for osPageSize.
var pageSize = os.Getpagesize()

// PageSize returns the platform's memory page size in bytes.
func PageSize() int {
	return pageSize
}
