package config

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)
	assert.Equal(t, uint32(0xC0010293), cfg.Register)

	switch runtime.GOOS {
	case "freebsd":
		assert.Equal(t, "/dev/cpuctl6", fmt.Sprintf(cfg.DevicePath, 6))
		assert.Len(t, cfg.Sensors, 2)
	case "linux":
		assert.Equal(t, "/dev/cpu/6/msr", fmt.Sprintf(cfg.DevicePath, 6))
		assert.NotEmpty(t, cfg.Sensors)
	default:
		assert.Empty(t, cfg.DevicePath)
	}
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Sensors = append(a.Sensors, "extra")
	b := Default()
	assert.NotContains(t, b.Sensors, "extra")
}
