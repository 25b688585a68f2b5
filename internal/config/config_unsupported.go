//go:build !linux && !freebsd

package config

func newPlatformDefault() *Config {
	return &Config{}
}
