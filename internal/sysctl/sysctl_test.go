package sysctl

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInt(t *testing.T) {
	raw := make([]byte, 4)
	binary.NativeEndian.PutUint32(raw, 8)

	v, err := DecodeInt("kern.smp.cores", raw)
	require.NoError(t, err)
	assert.Equal(t, int32(8), v)
}

func TestDecodeInt_Negative(t *testing.T) {
	raw := make([]byte, 4)
	binary.NativeEndian.PutUint32(raw, 0xFFFFFFFF)

	v, err := DecodeInt("x", raw)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)
}

func TestDecodeInt_WrongSize(t *testing.T) {
	for _, n := range []int{0, 1, 2, 8, 16} {
		_, err := DecodeInt("kern.ostype", make([]byte, n))
		assert.ErrorIs(t, err, ErrType, "len=%d", n)
	}
}

func TestDeciKelvinToCelsius(t *testing.T) {
	cases := []struct {
		dk   int32
		want float64
	}{
		{2731, -0.05},
		{2732, 0.05},
		{3232, 50.05},
		{0, -273.15},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, DeciKelvinToCelsius(tc.dk), 1e-9, "dk=%d", tc.dk)
	}
}
