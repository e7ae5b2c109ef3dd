//go:build !linux && !darwin && !windows

package ram

// platformQuerier on unrecognized platforms always reports unavailable,
// so Total/Free fall back to FallbackMax per the documented contract.
type platformQuerier struct{}

func (platformQuerier) total() (uint64, bool) { return 0, false }
func (platformQuerier) free() (uint64, bool)  { return 0, false }
