//go:build linux

package ram

import "golang.org/x/sys/unix"

// platformQuerier backs Total/Free with unix.Sysinfo, the same family of
// OS-reported facts joshuapare-hivekit's unix-specific files (e.g.
// hive/loader_unix.go) pull from golang.org/x/sys/unix rather than calling
// into syscall directly.
type platformQuerier struct{}

func sysinfo() (unix.Sysinfo_t, bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return unix.Sysinfo_t{}, false
	}
	return info, true
}

func (platformQuerier) total() (uint64, bool) {
	info, ok := sysinfo()
	if !ok {
		return 0, false
	}
	return uint64(info.Totalram) * uint64(info.Unit), true
}

func (platformQuerier) free() (uint64, bool) {
	info, ok := sysinfo()
	if !ok {
		return 0, false
	}
	return uint64(info.Freeram) * uint64(info.Unit), true
}
