//go:build linux

package config

func newPlatformDefault() *Config {
	return &Config{
		DevicePath: "/dev/cpu/%d/msr",
		Sensors:    []string{"k10temp_tctl"},
	}
}
