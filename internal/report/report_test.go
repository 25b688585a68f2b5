package report

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/CristiGvl/zenstat/internal/pstate"
	"github.com/CristiGvl/zenstat/internal/temps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	states := []pstate.State{
		pstate.Decode(pstate.Encode(0x90, 8, 0x12)),
		pstate.Decode(pstate.Encode(8, 8, 0)),
	}
	readings := []temps.Reading{
		{Name: "dev.amdtemp.0.core0.sensor0", Celsius: 45.349},
		{Name: "dev.jedec_dimm.0.temp", Celsius: 38.0},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, states, readings))
	assert.Equal(t, ""+
		"3.60 GHz @ 1.44V\n"+
		"0.20 GHz @ 1.55V\n"+
		"dev.amdtemp.0.core0.sensor0: 45.3C\n"+
		"dev.jedec_dimm.0.temp: 38.0C\n", buf.String())
}

func TestWrite_Unclamped(t *testing.T) {
	states := []pstate.State{
		{FrequencyGHz: math.Inf(1), Voltage: -0.04375},
		{FrequencyGHz: math.NaN(), Voltage: 1.55},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, states, nil))
	assert.Equal(t, "+Inf GHz @ -0.04V\nNaN GHz @ 1.55V\n", buf.String())
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, nil))
	assert.Empty(t, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_Error(t *testing.T) {
	err := Write(failWriter{}, []pstate.State{{}}, nil)
	assert.Error(t, err)
}
