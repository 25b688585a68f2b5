//go:build linux

package msr

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DevMSRBackend reads registers from msr(4) device nodes with pread(2)
type DevMSRBackend struct {
	pathFmt string
}

// newPlatformBackend creates a new /dev/cpu/N/msr backend
func newPlatformBackend(pathFmt string) Backend {
	return &DevMSRBackend{pathFmt: pathFmt}
}

// Open opens the msr device of the given thread read-only
func (b *DevMSRBackend) Open(thread int) (Handle, error) {
	path := fmt.Sprintf(b.pathFmt, thread)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return &devHandle{f: f, thread: thread}, nil
}

// Ioctls returns nil; msr(4) reads are positioned reads
func (b *DevMSRBackend) Ioctls() []uint {
	return nil
}

type devHandle struct {
	f      *os.File
	thread int
}

// Read reads the eight bytes at offset reg.
func (h *devHandle) Read(reg uint32) (uint64, error) {
	var buf [8]byte
	n, err := unix.Pread(int(h.f.Fd()), buf[:], int64(reg))
	if err != nil {
		return 0, fmt.Errorf("%w: thread %d register %#x: %w", ErrRead, h.thread, reg, err)
	}
	if n != len(buf) {
		return 0, fmt.Errorf("%w: thread %d register %#x: got %d bytes", ErrShortRead, h.thread, reg, n)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (h *devHandle) Fd() uintptr {
	return h.f.Fd()
}
