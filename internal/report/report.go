// Package report renders decoded core states and temperature readings.
package report

import (
	"fmt"
	"io"

	"github.com/CristiGvl/zenstat/internal/pstate"
	"github.com/CristiGvl/zenstat/internal/temps"
)

// Write prints one line per core in slice order, then one line per sensor.
func Write(w io.Writer, states []pstate.State, readings []temps.Reading) error {
	for _, s := range states {
		if _, err := fmt.Fprintf(w, "%.2f GHz @ %.2fV\n", s.FrequencyGHz, s.Voltage); err != nil {
			return err
		}
	}
	for _, r := range readings {
		if _, err := fmt.Fprintf(w, "%s: %.1fC\n", r.Name, r.Celsius); err != nil {
			return err
		}
	}
	return nil
}
