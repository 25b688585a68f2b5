//go:build linux

package temps

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

// LinuxReader implements temperature reading for Linux hwmon sensors
type LinuxReader struct {
	sensors func(ctx context.Context) ([]host.TemperatureStat, error)
}

// newPlatformReader creates a new Linux temperature reader
func newPlatformReader() Reader {
	return &LinuxReader{sensors: host.SensorsTemperaturesWithContext}
}

// Read returns the sensors whose gopsutil key matches one of names
func (r *LinuxReader) Read(ctx context.Context, names []string) ([]Reading, error) {
	if len(names) == 0 {
		return nil, nil
	}

	stats, err := r.sensors(ctx)
	// gopsutil reports unreadable hwmon entries as warnings next to the
	// readable ones; only a missing requested key is fatal.
	if err != nil && len(stats) == 0 {
		return nil, fmt.Errorf("temps: %w", err)
	}

	return selectSensors(stats, names)
}

func selectSensors(stats []host.TemperatureStat, names []string) ([]Reading, error) {
	byKey := make(map[string]float64, len(stats))
	for _, s := range stats {
		if _, seen := byKey[s.SensorKey]; !seen {
			byKey[s.SensorKey] = s.Temperature
		}
	}

	readings := make([]Reading, 0, len(names))
	for _, name := range names {
		c, ok := byKey[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissing, name)
		}
		readings = append(readings, Reading{Name: name, Celsius: c})
	}
	return readings, nil
}
