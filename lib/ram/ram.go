// Package ram queries total and free physical memory and derives the safe
// allocation ceiling the free-list allocator enforces.
package ram

// FallbackMax is the compile-time constant used as a stand-in for total
// RAM when the platform cannot be queried (e.g. an unrecognized GOOS).
const FallbackMax = uint64(1) << 32 // 4 GiB

// Reserve is subtracted from the reported or fallback total before
// computing Max, leaving headroom for the rest of the process.
const Reserve = uint64(1) << 30 // 1 GiB

// Floor is the minimum value Max ever returns, regardless of how little
// RAM Total reports (e.g. inside a constrained container).
const Floor = uint64(16) << 20 // 16 MiB

// querier is satisfied by each platform's backend file (ram_linux.go,
// ram_darwin.go, ram_windows.go, ram_other.go).
type querier interface {
	total() (uint64, bool)
	free() (uint64, bool)
}

var backend querier = platformQuerier{}

// Total returns the system's total physical RAM in bytes, falling back to
// FallbackMax when the platform cannot report it.
func Total() uint64 {
	if v, ok := backend.total(); ok {
		return v
	}
	return FallbackMax
}

// Free returns the system's currently free physical RAM in bytes, falling
// back to FallbackMax when the platform cannot report it.
func Free() uint64 {
	if v, ok := backend.free(); ok {
		return v
	}
	return FallbackMax
}

// Max returns the maximum size a caller may request from the free-list
// allocator: max(Total()-Reserve, Floor).
func Max() uint64 {
	total := Total()
	var budget uint64
	if total > Reserve {
		budget = total - Reserve
	}
	if budget < Floor {
		return Floor
	}
	return budget
}
