package temps

import (
	"context"
	"errors"
)

// ErrMissing indicates that a requested sensor does not exist.
var ErrMissing = errors.New("temps: no such sensor")

// Reading represents one temperature sensor value
type Reading struct {
	Name    string  `json:"name"`
	Celsius float64 `json:"temperature_celsius"`
}

// Reader interface for temperature sensors
type Reader interface {
	// Read returns one reading per name, in the order given. A missing
	// sensor is an error.
	Read(ctx context.Context, names []string) ([]Reading, error)
}

// NewReader creates a new temperature reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}
