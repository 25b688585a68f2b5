//go:build freebsd

package sandbox

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Capsicum restricts descriptors with cap_rights_limit(2) and
// cap_ioctls_limit(2) and then calls cap_enter(2)
type Capsicum struct{}

// newPlatformReducer creates a new Capsicum reducer
func newPlatformReducer() Reducer {
	return &Capsicum{}
}

// Restrict limits every fd to exactly the given ioctls and enters
// capability mode. It must be called after every descriptor is open.
func (c *Capsicum) Restrict(fds []uintptr, ioctls []uint) error {
	rights, err := unix.CapRightsInit([]uint64{unix.CAP_IOCTL})
	if err != nil {
		return fmt.Errorf("%w: rights: %w", ErrRestrict, err)
	}

	for _, fd := range fds {
		if err := unix.CapRightsLimit(fd, rights); err != nil {
			return fmt.Errorf("%w: cap_rights_limit fd %d: %w", ErrRestrict, fd, err)
		}
		if err := capIoctlsLimit(fd, ioctls); err != nil {
			return fmt.Errorf("%w: cap_ioctls_limit fd %d: %w", ErrRestrict, fd, err)
		}
	}

	if _, _, errno := unix.Syscall(unix.SYS_CAP_ENTER, 0, 0, 0); errno != 0 {
		return fmt.Errorf("%w: cap_enter: %w", ErrRestrict, errno)
	}

	return nil
}

// Enforcing returns true
func (c *Capsicum) Enforcing() bool {
	return true
}

// capIoctlsLimit wraps cap_ioctls_limit(2), which x/sys/unix does not export.
// An empty list forbids every ioctl.
func capIoctlsLimit(fd uintptr, cmds []uint) error {
	var p unsafe.Pointer
	if len(cmds) > 0 {
		p = unsafe.Pointer(&cmds[0])
	}
	_, _, errno := unix.Syscall(unix.SYS_CAP_IOCTLS_LIMIT, fd, uintptr(p), uintptr(len(cmds)))
	if errno != 0 {
		return errno
	}
	return nil
}
