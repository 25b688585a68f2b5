// Package msr reads model-specific registers through the operating
// system's per-thread register-access devices.
package msr

import "unsafe"

// PStateStatus is the AMD core P-state status register (VID/DID/FID).
const PStateStatus uint32 = 0xC0010293

// ioctl request encoding from FreeBSD <sys/ioccom.h>.
const (
	iocParmMask = 1<<13 - 1
	iocOut      = 0x40000000
	iocIn       = 0x80000000
	iocInOut    = iocIn | iocOut
)

// msrArgs mirrors cpuctl_msr_args_t.
type msrArgs struct {
	MSR  uint32
	Data uint64
}

// RdmsrIoctl is CPUCTL_RDMSR, _IOWR('c', 1, cpuctl_msr_args_t).
const RdmsrIoctl uint = iocInOut | (uint(unsafe.Sizeof(msrArgs{}))&iocParmMask)<<16 | uint('c')<<8 | 1

// Handle is an open register-access device bound to one logical thread.
// Handles are never shared between cores and stay open until exit.
type Handle interface {
	Read(reg uint32) (uint64, error)
	Fd() uintptr
}

// Backend opens register-access devices for the current platform.
type Backend interface {
	Open(thread int) (Handle, error)
	// Ioctls lists the control codes Read issues; empty when reads do
	// not use ioctl(2).
	Ioctls() []uint
}

// NewBackend creates a backend for the current platform. pathFmt is a
// fmt pattern taking the logical thread index.
func NewBackend(pathFmt string) Backend {
	return newPlatformBackend(pathFmt)
}
