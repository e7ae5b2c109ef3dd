//go:build darwin

package ram

import "golang.org/x/sys/unix"

// platformQuerier backs Total with unix.SysctlUint64("hw.memsize"). Darwin
// exposes no equally cheap free-memory sysctl through golang.org/x/sys, so
// free() reports unavailable and callers fall back to FallbackMax, per the
// explicit "when the platform cannot report RAM" clause in the contract.
type platformQuerier struct{}

func (platformQuerier) total() (uint64, bool) {
	v, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, false
	}
	return v, true
}

func (platformQuerier) free() (uint64, bool) {
	return 0, false
}
