// Package sysctl reads typed integer values from the kernel's
// configuration-parameter tree.
package sysctl

import (
	"encoding/binary"
	"fmt"
)

// kelvinOffset converts deci-Kelvin readings to Celsius.
const kelvinOffset = 273.15

// DecodeInt interprets a raw sysctl value as a native-endian C int.
func DecodeInt(name string, raw []byte) (int32, error) {
	if len(raw) != 4 {
		return 0, fmt.Errorf("%w: %s is %d bytes, want 4", ErrType, name, len(raw))
	}
	return int32(binary.NativeEndian.Uint32(raw)), nil
}

// DeciKelvinToCelsius converts an IK-formatted sysctl value.
func DeciKelvinToCelsius(dk int32) float64 {
	return float64(dk)/10 - kelvinOffset
}
