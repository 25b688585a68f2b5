package config

import "github.com/CristiGvl/zenstat/internal/msr"

// Config holds the compile-time settings of a run. There are no flags or
// configuration files; Default returns the values for the current platform.
type Config struct {
	// Register is the MSR read on every core.
	Register uint32
	// DevicePath is a fmt pattern taking the logical thread index.
	DevicePath string
	// Sensors lists the temperature sensors reported after the cores.
	Sensors []string
}

// Default returns the configuration for the current platform
func Default() *Config {
	cfg := newPlatformDefault()
	cfg.Register = msr.PStateStatus
	return cfg
}
