//go:build freebsd

package config

func newPlatformDefault() *Config {
	return &Config{
		DevicePath: "/dev/cpuctl%d",
		Sensors: []string{
			"dev.amdtemp.0.core0.sensor0",
			"dev.jedec_dimm.0.temp",
		},
	}
}
