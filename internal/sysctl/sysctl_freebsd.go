//go:build freebsd

package sysctl

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Int returns the value of an integer sysctl.
func Int(name string) (int32, error) {
	raw, err := unix.SysctlRaw(name)
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return 0, fmt.Errorf("%w: %s", ErrMissing, name)
		}
		return 0, fmt.Errorf("sysctl %s: %w", name, err)
	}
	return DecodeInt(name, raw)
}

// Celsius returns the value of a deci-Kelvin temperature sysctl in Celsius.
func Celsius(name string) (float64, error) {
	dk, err := Int(name)
	if err != nil {
		return 0, err
	}
	return DeciKelvinToCelsius(dk), nil
}
