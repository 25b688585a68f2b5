//go:build freebsd

package msr

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// CPUCtlBackend reads registers with the cpuctl(4) RDMSR ioctl
type CPUCtlBackend struct {
	pathFmt string
}

// newPlatformBackend creates a new cpuctl backend
func newPlatformBackend(pathFmt string) Backend {
	return &CPUCtlBackend{pathFmt: pathFmt}
}

// Open opens the cpuctl device of the given thread read-only
func (b *CPUCtlBackend) Open(thread int) (Handle, error) {
	path := fmt.Sprintf(b.pathFmt, thread)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return &cpuctlHandle{f: f, thread: thread}, nil
}

// Ioctls returns the single control code used by Read
func (b *CPUCtlBackend) Ioctls() []uint {
	return []uint{RdmsrIoctl}
}

type cpuctlHandle struct {
	f      *os.File
	thread int
}

func (h *cpuctlHandle) Read(reg uint32) (uint64, error) {
	args := msrArgs{MSR: reg}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, h.f.Fd(), uintptr(RdmsrIoctl), uintptr(unsafe.Pointer(&args)))
	if errno != 0 {
		return 0, fmt.Errorf("%w: thread %d register %#x: %w", ErrRead, h.thread, reg, errno)
	}
	return args.Data, nil
}

func (h *cpuctlHandle) Fd() uintptr {
	return h.f.Fd()
}
